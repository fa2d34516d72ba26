package cardform

// StateProvider owns values, validation and focus for the widget. The widget only
// reads from it and forwards events to it; it never writes state directly.
type StateProvider interface {
	Values() Values
	Status() Status
	Focused() FieldName

	OnFocus(field FieldName)
	OnChange(field FieldName, value string)
	OnBecomeEmpty(field FieldName)
	OnBecomeValid(field FieldName)
}
