package cli

// OptionalString is a flag.Value that remembers whether it was given.
type OptionalString struct {
	Value string
	IsSet bool
}

func (o *OptionalString) String() string {
	return o.Value
}

func (o *OptionalString) Set(value string) error {
	o.Value = value
	o.IsSet = true
	return nil
}

// Or returns the flag value when it was given and fallback otherwise.
func (o OptionalString) Or(fallback string) string {
	if o.IsSet {
		return o.Value
	}
	return fallback
}
