package models

// ArgumentType is the category an argument is filed under
type ArgumentType string

const (
	ArgumentTypeTheory ArgumentType = "theory"
	ArgumentTypeLARP   ArgumentType = "larp"
	ArgumentTypePhil   ArgumentType = "phil"
	ArgumentTypeTricks ArgumentType = "tricks"
	ArgumentTypeKritik ArgumentType = "ks"
	ArgumentTypeMisc   ArgumentType = "misc"
)

// DefaultArgumentTypes returns the categories listed when /arglist is given no tags
func DefaultArgumentTypes() []ArgumentType {
	return []ArgumentType{
		ArgumentTypeTheory,
		ArgumentTypeLARP,
		ArgumentTypePhil,
		ArgumentTypeTricks,
		ArgumentTypeKritik,
		ArgumentTypeMisc,
	}
}

// Argument is a stored argument document
type Argument struct {
	// ID is the document identifier in the store
	ID string `json:"id"`

	// Type is the category of the argument
	Type ArgumentType `json:"type"`

	// Name is the display name, looked up case-insensitively
	Name string `json:"name"`

	// Arg is the argument body posted by /arg
	Arg string `json:"arg"`
}
