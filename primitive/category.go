package primitive

import "maps"

type CategoryEnum int

type ConversionPair struct {
	From, To KindEnum
}

const (
	CategoryIdentity             CategoryEnum = 1 << iota // every kind to itself, boolean included
	CategoryWidening                                      // byte < short < int < long < float < double, char < int
	CategoryNarrowing                                     // the reverse direction of every widening, plus short <-> char
	CategoryWideningAndNarrowing                          // byte -> char: widen to int, then narrow to char

	CategoryAll  = (1 << iota) - 1 //all categories combined
	CategoryNone = 0               // no categories selected
)

var conversionPairs map[CategoryEnum]map[ConversionPair]struct{}

func init() {
	conversionPairs = make(map[CategoryEnum]map[ConversionPair]struct{})

	conversionPairs[CategoryIdentity] = map[ConversionPair]struct{}{}
	for kind := KindEnum(1); int(kind) < KindTotal; kind++ {
		conversionPairs[CategoryIdentity][ConversionPair{kind, kind}] = struct{}{}
	}

	conversionPairs[CategoryWidening] = wideningConversionPairs()

	conversionPairs[CategoryWideningAndNarrowing] = map[ConversionPair]struct{}{
		{KindByte, KindChar}: {},
	}

	// CategoryNarrowing: every numeric pair which is neither identity, widening
	// nor the byte -> char special case
	conversionPairs[CategoryNarrowing] = map[ConversionPair]struct{}{}
	for fromKind := KindEnum(1); int(fromKind) < KindTotal; fromKind++ {
		if !fromKind.IsNumeric() {
			continue
		}

		for toKind := KindEnum(1); int(toKind) < KindTotal; toKind++ {
			if !toKind.IsNumeric() || fromKind == toKind {
				continue
			}

			pair := ConversionPair{fromKind, toKind}
			if _, ok := conversionPairs[CategoryWidening][pair]; ok {
				continue
			}

			if _, ok := conversionPairs[CategoryWideningAndNarrowing][pair]; ok {
				continue
			}

			conversionPairs[CategoryNarrowing][pair] = struct{}{}
		}
	}
}

func wideningConversionPairs() map[ConversionPair]struct{} {
	return map[ConversionPair]struct{}{
		{KindByte, KindShort}:  {},
		{KindByte, KindInt}:    {},
		{KindByte, KindLong}:   {},
		{KindByte, KindFloat}:  {},
		{KindByte, KindDouble}: {},

		{KindShort, KindInt}:    {}, // short never widens to char
		{KindShort, KindLong}:   {},
		{KindShort, KindFloat}:  {},
		{KindShort, KindDouble}: {},

		{KindChar, KindInt}:    {}, // char never widens to short
		{KindChar, KindLong}:   {},
		{KindChar, KindFloat}:  {},
		{KindChar, KindDouble}: {},

		{KindInt, KindLong}:   {},
		{KindInt, KindFloat}:  {}, // may lose precision, still widening
		{KindInt, KindDouble}: {},

		{KindLong, KindFloat}:  {},
		{KindLong, KindDouble}: {},

		{KindFloat, KindDouble}: {},
	}
}

// Allowed reports whether the pair belongs to any of the given categories.
func Allowed(pair ConversionPair, allowed CategoryEnum) bool {
	_, ok := allowedSet(allowed)[pair]
	return ok
}

// IsWidening reports a widening primitive conversion (identity excluded).
func IsWidening(from, to KindEnum) bool {
	_, ok := conversionPairs[CategoryWidening][ConversionPair{from, to}]
	return ok
}

// IsNarrowing reports a narrowing primitive conversion, byte -> char included.
func IsNarrowing(from, to KindEnum) bool {
	return Allowed(ConversionPair{from, to}, CategoryNarrowing|CategoryWideningAndNarrowing)
}

// WideningTargets lists kinds reachable from k by a widening conversion,
// narrowest first.
func WideningTargets(k KindEnum) []KindEnum {
	var res []KindEnum
	for to := KindEnum(1); int(to) < KindTotal; to++ {
		if IsWidening(k, to) {
			res = append(res, to)
		}
	}

	return res
}

func allowedSet(allowed CategoryEnum) map[ConversionPair]struct{} {
	res := map[ConversionPair]struct{}{}

	for category := CategoryEnum(1); category&CategoryAll > 0; category <<= 1 {
		if allowed&category == 0 {
			continue
		}

		maps.Copy(res, conversionPairs[category])
	}

	return res
}
