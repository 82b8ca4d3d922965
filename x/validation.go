package x

// Validater is any struct that can be validated.
type Validater interface {
	Validate() error
}

// MarshalValidater is something that can be validated and serialized.
type MarshalValidater interface {
	Marshal() ([]byte, error)
	Validater
}

// MustValidate panics if the object is not valid.
func MustValidate(obj Validater) {
	if err := obj.Validate(); err != nil {
		panic(err)
	}
}
