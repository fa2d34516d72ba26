package cardform

// FieldName identifies one input of the form. The zero value means no field.
type FieldName string

const (
	FieldNone   FieldName = ""
	FieldNumber FieldName = "number"
	FieldExpiry FieldName = "expiry"
	FieldCVC    FieldName = "cvc"
	FieldLast4  FieldName = "last4"
)

// EditableFields lists the fields a user can type into, in tab order.
var EditableFields = []FieldName{FieldNumber, FieldExpiry, FieldCVC}

// Validity is the provider's verdict on a single field.
type Validity string

const (
	ValidityUnknown    Validity = ""
	ValidityValid      Validity = "valid"
	ValidityInvalid    Validity = "invalid"
	ValidityIncomplete Validity = "incomplete"
)

// Values holds the current text of each field plus the detected card type.
type Values struct {
	Number string
	Expiry string
	CVC    string
	Type   string
}

func (v Values) Get(field FieldName) string {
	switch field {
	case FieldNumber:
		return v.Number
	case FieldExpiry:
		return v.Expiry
	case FieldCVC:
		return v.CVC
	}
	return ""
}

// Status holds the validity of each field.
type Status struct {
	Number Validity
	Expiry Validity
	CVC    Validity
}

func (s Status) Get(field FieldName) Validity {
	switch field {
	case FieldNumber:
		return s.Number
	case FieldExpiry:
		return s.Expiry
	case FieldCVC:
		return s.CVC
	}
	return ValidityUnknown
}
