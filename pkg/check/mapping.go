package check

import "github.com/roach88/tcheck/pkg/value"

// Keys passes tables whose every key satisfies c.
func Keys(c Check) Check {
	mustChecks("keys", c)
	return entriesWhere(c, nil)
}

// Values passes tables whose every value satisfies c.
func Values(c Check) Check {
	mustChecks("values", c)
	return entriesWhere(nil, c)
}

// Map passes tables whose keys satisfy keyCheck and whose values satisfy
// valueCheck. An empty table passes.
func Map(keyCheck, valueCheck Check) Check {
	mustChecks("map", keyCheck, valueCheck)
	return entriesWhere(keyCheck, valueCheck)
}

// Record is Map under the name used for string-keyed dictionaries.
func Record(keyCheck, valueCheck Check) Check {
	mustChecks("record", keyCheck, valueCheck)
	return entriesWhere(keyCheck, valueCheck)
}

// Set passes tables whose keys satisfy elem and whose values are all
// presence markers (true, or struct{}{} for map[T]struct{}).
func Set(elem Check) Check {
	mustChecks("set", elem)
	return entriesWhere(elem, func(v any) error {
		if !value.IsPresenceMarker(v) {
			return fail("set member must map to true, got %s", value.Render(v))
		}
		return nil
	})
}

// entriesWhere visits entries in key order; either check may be nil.
func entriesWhere(keyCheck, valueCheck Check) Check {
	return func(v any) error {
		entries, ok := value.Entries(v)
		if !ok {
			return expected("table", v)
		}
		for _, e := range entries {
			if keyCheck != nil {
				if err := keyCheck(e.Key); err != nil {
					return atKey(err, e.Key)
				}
			}
			if valueCheck != nil {
				if err := valueCheck(e.Value); err != nil {
					return at(err, e.Key)
				}
			}
		}
		return nil
	}
}
