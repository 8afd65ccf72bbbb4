package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/GottfriedHerold/mont381/bls12381/common"
	"github.com/GottfriedHerold/mont381/bls12381/fieldElements"
)

const (
	directionFlag  = "to"
	endiannessFlag = "endianness"
)

const (
	toMontgomery = "montgomery"
	toNormal     = "normal"
)

var (
	errInvalidDirection  = errors.New("invalid conversion direction")
	errInvalidEndianness = errors.New("invalid endianness")
)

var (
	params = &convertParams{}
)

type convertParams struct {
	direction     string
	endiannessRaw string
	tierName      string

	tier       *fieldElements.MontgomeryTier
	endianness common.FieldElementEndianness
	inputs     []fieldElements.Uint384
}

func (p *convertParams) initRawParams(args []string) error {
	p.direction = strings.ToLower(p.direction)
	if p.direction != toMontgomery && p.direction != toNormal {
		return fmt.Errorf("%w %q, expected %q or %q", errInvalidDirection, p.direction, toMontgomery, toNormal)
	}

	switch strings.ToLower(p.endiannessRaw) {
	case "big", "be":
		p.endianness = common.BigEndian
	case "little", "le":
		p.endianness = common.LittleEndian
	default:
		return fmt.Errorf("%w %q, expected big or little", errInvalidEndianness, p.endiannessRaw)
	}

	if p.tierName == "" {
		p.tier = fieldElements.DefaultTier()
	} else {
		tier, err := fieldElements.TierByName(p.tierName)
		if err != nil {
			return err
		}

		p.tier = tier
	}

	p.inputs = make([]fieldElements.Uint384, 0, len(args))

	for _, arg := range args {
		x, err := fieldElements.ParseReduced(arg)
		if err != nil {
			return err
		}

		p.inputs = append(p.inputs, x)
	}

	return nil
}

// convert applies the selected conversion to every input.
func (p *convertParams) convert() *ConvertResult {
	result := &ConvertResult{
		Direction:  p.direction,
		Tier:       p.tier.Name(),
		Endianness: p.endianness.String(),
	}

	for i := range p.inputs {
		in := p.inputs[i]

		var out fieldElements.Uint384
		if p.direction == toMontgomery {
			p.tier.ToMontgomery(&out, (*[6]uint64)(&in))
		} else {
			p.tier.ToNormal((*[6]uint64)(&out), &in)
		}

		bytes := out.Bytes(p.endianness)
		result.Conversions = append(result.Conversions, Conversion{
			Input:   in.String(),
			Output:  out.String(),
			Decimal: out.ToBigInt().String(),
			Bytes:   fmt.Sprintf("%x", bytes[:]),
		})
	}

	return result
}
