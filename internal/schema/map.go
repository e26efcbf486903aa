package schema

import (
	"errors"
	"fmt"
	"sort"
)

// Map holds typed values by key. Reader output may be sparse; see WithDefaults.
type Map map[Key]Value

// Keys returns the map's keys in schema order.
func (m Map) Keys() []Key {
	keys := make([]Key, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		oi, oj := position(keys[i]), position(keys[j])
		if oi != oj {
			return oi < oj
		}
		return keys[i] < keys[j]
	})
	return keys
}

// Clone returns a shallow copy.
func (m Map) Clone() Map {
	out := make(Map, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// WithDefaults returns a copy filled with the domain's defaults for every missing key.
func (m Map) WithDefaults(d Domain) Map {
	out := Defaults(d)
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Validate checks that every key belongs to the domain and that every value fits its
// setting. All problems are reported together.
func (m Map) Validate(d Domain) error {
	var errs []error
	for _, key := range m.Keys() {
		setting, ok := Lookup(key)
		if !ok {
			errs = append(errs, fmt.Errorf("%w: %q", ErrUnknownKey, key))
			continue
		}
		if setting.Domain != d {
			errs = append(errs, fmt.Errorf("%w: %s is a %s setting, not %s", ErrWrongDomain, key, setting.Domain, d))
			continue
		}
		if err := setting.Check(m[key]); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// position orders unknown keys after known ones.
func position(k Key) int {
	if i, ok := index[k]; ok {
		return i
	}
	return len(index)
}
