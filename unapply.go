package unpack

import "reflect"

// Unapplier is implemented by pattern values that perform their own
// structural match against an element.
type Unapplier interface {
	Unapply(v any) bool
}

// unapplyCheck matches obj against a pattern value. Order of preference:
// the Unapplier interface, an Unapply method found via reflection (with an
// assignable or convertible argument and a trailing bool result), and
// finally deep equality.
func unapplyCheck(obj any, pattern any) bool {
	if u, ok := pattern.(Unapplier); ok {
		return u.Unapply(obj)
	}

	patVal := reflect.ValueOf(pattern)
	if !patVal.IsValid() {
		return obj == nil
	}
	meth := patVal.MethodByName("Unapply")
	if meth.IsValid() && meth.Type().NumIn() == 1 && meth.Type().NumOut() >= 1 {
		argVal := reflect.ValueOf(obj)
		if !argVal.IsValid() {
			argVal = reflect.Zero(meth.Type().In(0))
		} else if !argVal.Type().AssignableTo(meth.Type().In(0)) {
			if !argVal.Type().ConvertibleTo(meth.Type().In(0)) {
				return false
			}
			argVal = argVal.Convert(meth.Type().In(0))
		}

		out := meth.Call([]reflect.Value{argVal})
		last := out[len(out)-1]
		if last.Kind() == reflect.Interface {
			last = last.Elem()
		}
		if last.IsValid() && last.Kind() == reflect.Bool {
			return last.Bool()
		}
		// A non-bool result signals a match when it is present at all.
		return last.IsValid()
	}

	return reflect.DeepEqual(obj, pattern)
}
