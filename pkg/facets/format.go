package facets

// DataKind is the closed set of logical data kinds a DataTypeAnnotation can
// declare.
type DataKind int

const (
	DataKindUnknown DataKind = iota
	DataKindDateTime
	DataKindDate
	DataKindTime
	DataKindDuration
	DataKindPhoneNumber
	DataKindCurrency
	DataKindText
	DataKindHTML
	DataKindMultilineText
	DataKindEmailAddress
	DataKindPassword
	DataKindURL
	DataKindImageURL
	DataKindCreditCard
	DataKindPostalCode
	DataKindUpload
)

// dataKindFormats maps logical data kinds to schema format strings. Kinds
// missing from the table leave the node's format untouched.
var dataKindFormats = map[DataKind]string{
	DataKindDateTime:      "date-time",
	DataKindDate:          "date",
	DataKindTime:          "time",
	DataKindDuration:      "duration",
	DataKindPhoneNumber:   "phone",
	DataKindCurrency:      "currency",
	DataKindText:          "string",
	DataKindHTML:          "html",
	DataKindMultilineText: "multiline",
	DataKindEmailAddress:  "email",
	DataKindPassword:      "password",
	DataKindURL:           "uri",
	DataKindImageURL:      "uri",
	DataKindCreditCard:    "credit-card",
	DataKindPostalCode:    "postal-code",
	DataKindUpload:        "file",
}

// FormatForDataKind returns the schema format string for a logical data kind,
// or false if the kind has no format mapping.
func FormatForDataKind(kind DataKind) (string, bool) {
	format, ok := dataKindFormats[kind]
	return format, ok
}
