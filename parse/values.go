package parse

import (
	"strings"
)

func (l *List) Len() int {
	return len(l.Values)
}

// AssertCount fails with an arity error unless the list has exactly n values.
func (l *List) AssertCount(n int) error {
	if len(l.Values) != n {
		return ErrorAt(ArityError, l, "Expected %d values, found %d", n, len(l.Values))
	}
	return nil
}

func (l *List) AssertCountRange(min, max int) error {
	if len(l.Values) < min || len(l.Values) > max {
		return ErrorAt(ArityError, l, "Expected %d to %d values, found %d", min, max, len(l.Values))
	}
	return nil
}

func valueError(syn Syntax, expected string) error {
	return ErrorAt(ValueError, syn, "Expected %s, found %v", expected, syn.Type())
}

// StringValue returns the contents of a string. `$` reads as the empty string.
func StringValue(syn Syntax) (string, error) {
	switch v := syn.(type) {
	case *String:
		return v.Value, nil
	case *Omitted:
		return "", nil
	}
	return "", valueError(syn, "string")
}

// ConcatenatedStringValue joins a list of strings, the form used by header
// fields that were split into parts when written.
func ConcatenatedStringValue(syn Syntax) (string, error) {
	list, ok := syn.(*List)
	if !ok {
		return StringValue(syn)
	}
	var sb strings.Builder
	for _, v := range list.Values {
		s, err := StringValue(v)
		if err != nil {
			return "", err
		}
		sb.WriteString(s)
	}
	return sb.String(), nil
}

func StringListValue(syn Syntax) ([]string, error) {
	list, err := ListValue(syn)
	if err != nil {
		return nil, err
	}
	result := make([]string, 0, len(list.Values))
	for _, v := range list.Values {
		s, err := StringValue(v)
		if err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	return result, nil
}

func IntegerValue(syn Syntax) (int, error) {
	if v, ok := syn.(*Integer); ok {
		return v.Value, nil
	}
	return 0, valueError(syn, "integer")
}

// RealValue accepts integers as well, since writers commonly drop the
// decimal point on whole numbers.
func RealValue(syn Syntax) (float64, error) {
	switch v := syn.(type) {
	case *Real:
		return v.Value, nil
	case *Integer:
		return float64(v.Value), nil
	}
	return 0, valueError(syn, "real")
}

func RealListValue(syn Syntax) ([]float64, error) {
	list, err := ListValue(syn)
	if err != nil {
		return nil, err
	}
	result := make([]float64, 0, len(list.Values))
	for _, v := range list.Values {
		f, err := RealValue(v)
		if err != nil {
			return nil, err
		}
		result = append(result, f)
	}
	return result, nil
}

func IntegerListValue(syn Syntax) ([]int, error) {
	list, err := ListValue(syn)
	if err != nil {
		return nil, err
	}
	result := make([]int, 0, len(list.Values))
	for _, v := range list.Values {
		n, err := IntegerValue(v)
		if err != nil {
			return nil, err
		}
		result = append(result, n)
	}
	return result, nil
}

func EnumerationValue(syn Syntax) (string, error) {
	if v, ok := syn.(*Enumeration); ok {
		return v.Value, nil
	}
	return "", valueError(syn, "enumeration")
}

func BooleanValue(syn Syntax) (bool, error) {
	s, err := EnumerationValue(syn)
	if err != nil {
		return false, err
	}
	switch s {
	case "T", "TRUE":
		return true, nil
	case "F", "FALSE":
		return false, nil
	}
	return false, ErrorAt(ValueError, syn, "Expected boolean, found .%s.", s)
}

func ListValue(syn Syntax) (*List, error) {
	if v, ok := syn.(*List); ok {
		return v, nil
	}
	return nil, valueError(syn, "list")
}

// IsAbsent reports whether syn is one of the `*` or `$` markers.
func IsAbsent(syn Syntax) bool {
	switch syn.(type) {
	case *Auto, *Omitted:
		return true
	}
	return false
}
