package logging

// Common field constructors
func String(key, value string) Field {
	return Field{Key: key, Value: value}
}

func Int(key string, value int) Field {
	return Field{Key: key, Value: value}
}

func Float64(key string, value float64) Field {
	return Field{Key: key, Value: value}
}

func Bool(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

func Error(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

func Any(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// Component names the subsystem emitting the entry
func Component(name string) Field {
	return String("component", name)
}

// Domain field helpers

func ODID(id string) Field {
	return String("od_id", id)
}

func Category(c int) Field {
	return Int("category", c)
}

func LinkID(id string) Field {
	return String("link_id", id)
}

func Gauge(g string) Field {
	return String("gauge", g)
}

func Mode(m string) Field {
	return String("mode", m)
}

func Tons(t float64) Field {
	return Float64("tons", t)
}

func Cost(c float64) Field {
	return Float64("cost", c)
}
