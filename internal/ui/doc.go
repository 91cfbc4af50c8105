// Package ui provides the color palette shared by the terminal output of the
// calibration tool. It honours the NO_COLOR convention so that styling can be
// turned off without touching the code that renders tables.
package ui
