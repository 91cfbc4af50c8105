package bignum

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"

	"github.com/agbru/bignum/internal/arith"
	apperrors "github.com/agbru/bignum/internal/errors"
)

// ─────────────────────────────────────────────────────────────────────────────
// Persisted tagged form
// ─────────────────────────────────────────────────────────────────────────────

// Tag selects the case of a Tagged value.
type Tag uint8

const (
	// TagSmall: the value fits one limb and is carried in Small.
	TagSmall Tag = iota
	// TagLarge: the value needs at least two limbs, carried in Large.
	TagLarge
)

// Tagged is the persisted form of a Natural over limbs of type W. A value
// that fits one W is Small; anything larger is Large, least significant
// limb first, with at least two limbs and a nonzero top limb.
type Tagged[W Unsigned] struct {
	Tag   Tag
	Small W
	Large []W
}

// String renders the form as "Small(n)" or "Large([l0, l1, ...])".
func (t Tagged[W]) String() string {
	if t.Tag == TagSmall {
		return fmt.Sprintf("Small(%d)", uint64(t.Small))
	}
	parts := make([]string, len(t.Large))
	for i, l := range t.Large {
		parts[i] = fmt.Sprint(uint64(l))
	}
	return "Large([" + strings.Join(parts, ", ") + "])"
}

// EncodeTagged returns the tagged form of x in W-bit limbs.
func EncodeTagged[W Unsigned](x Natural) Tagged[W] {
	w := arith.Width[W]()
	n := (x.BitLen() + w - 1) / w
	if n <= 1 {
		return Tagged[W]{Tag: TagSmall, Small: W(x.Uint64())}
	}
	limbs := x.limbs()
	out := make([]W, n)
	for i := range out {
		out[i] = W(extractBits(limbs, i*w, w))
	}
	return Tagged[W]{Tag: TagLarge, Large: out}
}

// DecodeTagged returns the Natural held by t. Input that is not in
// canonical form (a Large that would fit Small, or a zero top limb) is
// rejected with ErrInvalidRepresentation, as is an unknown tag.
func DecodeTagged[W Unsigned](t Tagged[W]) (Natural, error) {
	const op = "DecodeTagged"
	switch t.Tag {
	case TagSmall:
		return NaturalFromUint64(uint64(t.Small)), nil
	case TagLarge:
	default:
		return Natural{}, apperrors.Newf(op, apperrors.InvalidRepresentation, "unknown tag %d", t.Tag)
	}
	switch {
	case len(t.Large) < 2:
		return Natural{}, apperrors.Newf(op, apperrors.InvalidRepresentation, "large form with %d limbs", len(t.Large))
	case t.Large[len(t.Large)-1] == 0:
		return Natural{}, apperrors.Newf(op, apperrors.InvalidRepresentation, "zero top limb")
	}
	w := arith.Width[W]()
	z := make([]Word, (len(t.Large)*w+arith.W-1)/arith.W)
	for i, l := range t.Large {
		depositBits(z, i*w, w, uint64(l))
	}
	return NaturalFromLimbs(z), nil
}

// extractBits returns the w <= 64 bits of x starting at bit off.
func extractBits(x []Word, off, w int) uint64 {
	var v uint64
	for got := 0; got < w; {
		i, s := (off+got)/arith.W, (off+got)%arith.W
		if i >= len(x) {
			break
		}
		take := min(arith.W-s, w-got)
		chunk := uint64(x[i]>>uint(s)) & (1<<uint(take) - 1)
		v |= chunk << uint(got)
		got += take
	}
	return v
}

// depositBits ORs the low w <= 64 bits of v into z at bit off.
func depositBits(z []Word, off, w int, v uint64) {
	for put := 0; put < w; {
		i, s := (off+put)/arith.W, (off+put)%arith.W
		take := min(arith.W-s, w-put)
		chunk := (v >> uint(put)) & (1<<uint(take) - 1)
		z[i] |= Word(chunk) << uint(s)
		put += take
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────
//
// A Natural is written as {"Small":n} or {"Large":[l0,l1,...]} in 64-bit
// limbs, independent of the platform word size.

type naturalJSON struct {
	Small *uint64  `json:"Small,omitempty"`
	Large []uint64 `json:"Large,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (x Natural) MarshalJSON() ([]byte, error) {
	t := EncodeTagged[uint64](x)
	if t.Tag == TagSmall {
		return json.Marshal(naturalJSON{Small: &t.Small})
	}
	return json.Marshal(naturalJSON{Large: t.Large})
}

// UnmarshalJSON implements json.Unmarshaler.
func (x *Natural) UnmarshalJSON(data []byte) error {
	var v naturalJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	var t Tagged[uint64]
	switch {
	case v.Small != nil && v.Large == nil:
		t = Tagged[uint64]{Tag: TagSmall, Small: *v.Small}
	case v.Small == nil && v.Large != nil:
		t = Tagged[uint64]{Tag: TagLarge, Large: v.Large}
	default:
		return apperrors.Newf("Natural.UnmarshalJSON", apperrors.InvalidRepresentation, "exactly one of Small and Large must be set")
	}
	n, err := DecodeTagged(t)
	if err != nil {
		return err
	}
	*x = n
	return nil
}

type integerJSON struct {
	Negative  bool    `json:"Negative,omitempty"`
	Magnitude Natural `json:"Magnitude"`
}

// MarshalJSON implements json.Marshaler.
func (x Integer) MarshalJSON() ([]byte, error) {
	return json.Marshal(integerJSON{Negative: x.neg, Magnitude: x.abs})
}

// UnmarshalJSON implements json.Unmarshaler. A negative zero is rejected.
func (x *Integer) UnmarshalJSON(data []byte) error {
	var v integerJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Negative && v.Magnitude.IsZero() {
		return apperrors.Newf("Integer.UnmarshalJSON", apperrors.InvalidRepresentation, "negative zero")
	}
	*x = integer(v.Negative, v.Magnitude)
	return nil
}

type rationalJSON struct {
	Negative    bool    `json:"Negative,omitempty"`
	Numerator   Natural `json:"Numerator"`
	Denominator Natural `json:"Denominator"`
}

// MarshalJSON implements json.Marshaler.
func (x Rational) MarshalJSON() ([]byte, error) {
	return json.Marshal(rationalJSON{Negative: x.neg, Numerator: x.num, Denominator: x.Denominator()})
}

// UnmarshalJSON implements json.Unmarshaler. The fraction must already be
// in lowest terms with a nonzero denominator.
func (x *Rational) UnmarshalJSON(data []byte) error {
	const op = "Rational.UnmarshalJSON"
	var v rationalJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	if v.Denominator.IsZero() {
		return apperrors.New(op, apperrors.InvalidDenominator)
	}
	r := reduce(v.Negative, v.Numerator, v.Denominator)
	if r.neg != v.Negative || !r.num.Equal(v.Numerator) || !r.Denominator().Equal(v.Denominator) {
		return apperrors.Newf(op, apperrors.InvalidRepresentation, "%s/%s is not in lowest terms", v.Numerator, v.Denominator)
	}
	*x = r
	return nil
}
