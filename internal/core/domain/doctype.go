package domain

// DocumentType is the inferred semantic type of an uploaded document.
// Values correspond to the checklist's recognised categories.
type DocumentType string

// Recognised document types for ADGM incorporation processes.
const (
	TypeArticlesOfAssociation   DocumentType = "articles-of-association"
	TypeMemorandumOfAssociation DocumentType = "memorandum-of-association"
	TypeRegisterOfMembers       DocumentType = "register-of-members-and-directors"
	TypeBoardResolution         DocumentType = "board-resolution"
	TypeShareholderResolution   DocumentType = "shareholder-resolution"
	TypeUBODeclaration          DocumentType = "ubo-declaration"
	TypeIncorporationForm       DocumentType = "incorporation-application"
	TypeAddressNotice           DocumentType = "change-of-address-notice"
	TypeUnknown                 DocumentType = "unknown"
)

// displayNames maps types to human-readable titles used in reports
// and CLI output.
var displayNames = map[DocumentType]string{
	TypeArticlesOfAssociation:   "Articles of Association",
	TypeMemorandumOfAssociation: "Memorandum of Association",
	TypeRegisterOfMembers:       "Register of Members and Directors",
	TypeBoardResolution:         "Board Resolution",
	TypeShareholderResolution:   "Shareholder Resolution",
	TypeUBODeclaration:          "UBO Declaration Form",
	TypeIncorporationForm:       "Incorporation Application Form",
	TypeAddressNotice:           "Change of Registered Address Notice",
	TypeUnknown:                 "Unknown",
}

// String returns the wire identifier.
func (t DocumentType) String() string {
	return string(t)
}

// DisplayName returns the human-readable title for the type.
func (t DocumentType) DisplayName() string {
	if name, ok := displayNames[t]; ok {
		return name
	}
	return string(t)
}

// Known reports whether the type is a recognised checklist category.
func (t DocumentType) Known() bool {
	return t != TypeUnknown && t != ""
}
