package nat

import (
	"strconv"
	"sync/atomic"
)

// Algorithm identifies one multiplication, division or GCD algorithm.
type Algorithm int

const (
	Auto Algorithm = iota
	Basecase
	Toom22
	Toom32
	Toom33
	Toom42
	Toom43
	Toom44
	Toom53
	Toom63
	Toom6H
	Toom8H
	FFT
	Chunked

	DivBasecase
	DivNewton
	DivSmall

	GCDBinary
	GCDLehmer
)

var algorithmNames = [...]string{
	Auto:        "auto",
	Basecase:    "basecase",
	Toom22:      "toom22",
	Toom32:      "toom32",
	Toom33:      "toom33",
	Toom42:      "toom42",
	Toom43:      "toom43",
	Toom44:      "toom44",
	Toom53:      "toom53",
	Toom63:      "toom63",
	Toom6H:      "toom6h",
	Toom8H:      "toom8h",
	FFT:         "fft",
	Chunked:     "chunked",
	DivBasecase: "div-basecase",
	DivNewton:   "div-newton",
	DivSmall:    "div-small",
	GCDBinary:   "gcd-binary",
	GCDLehmer:   "gcd-lehmer",
}

func (a Algorithm) String() string {
	if a >= 0 && int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return "algorithm(" + strconv.Itoa(int(a)) + ")"
}

// MulAlgorithms lists every algorithm MulWith accepts, Auto excluded.
var MulAlgorithms = []Algorithm{
	Basecase, Toom22, Toom32, Toom33, Toom42, Toom43, Toom44,
	Toom53, Toom63, Toom6H, Toom8H, FFT, Chunked,
}

// Op names the operation reported to an Observer.
type Op string

const (
	OpMul Op = "mul"
	OpSqr Op = "sqr"
	OpDiv Op = "div"
	OpGCD Op = "gcd"
)

// Observer is notified of each top-level algorithm selection. It must be
// safe for concurrent use and must not call back into this package.
type Observer interface {
	Observe(op Op, alg Algorithm, limbs int)
}

type observerBox struct{ o Observer }

var observer atomic.Pointer[observerBox]

// SetObserver installs o (nil removes it) and returns the previous observer.
func SetObserver(o Observer) Observer {
	var prev *observerBox
	if o == nil {
		prev = observer.Swap(nil)
	} else {
		prev = observer.Swap(&observerBox{o})
	}
	if prev == nil {
		return nil
	}
	return prev.o
}

func observe(op Op, alg Algorithm, limbs int) {
	if b := observer.Load(); b != nil {
		b.o.Observe(op, alg, limbs)
	}
}
