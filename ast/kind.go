package ast

import "fmt"

// Kind identifies the shape of a [Node]. This is the closed set of CST node
// kinds a parser must expose per spec.md §6.3.
type Kind uint8

const (
	KindInvalid Kind = iota

	KindDocument

	// Executable document.
	KindOperationDefinition
	KindFragmentDefinition
	KindVariableDefinitions
	KindVariableDefinition
	KindVariable
	KindSelectionSet
	KindField
	KindAlias
	KindArgument
	KindArguments
	KindFragmentSpread
	KindInlineFragment
	KindTypeCondition
	KindDirective
	KindDirectives

	// Values. IntValue/FloatValue/.../EnumValue are the "concrete leaf
	// kinds" for Value that spec.md §6.3 calls out.
	KindIntValue
	KindFloatValue
	KindStringValue
	KindBlockStringValue
	KindBooleanValue
	KindNullValue
	KindEnumValue
	KindListValue
	KindObjectValue
	KindObjectField

	// Types.
	KindNamedType
	KindListType
	KindNonNullType

	// Type system document.
	KindSchemaDefinition
	KindSchemaExtension
	KindRootOperationTypeDefinition
	KindScalarTypeDefinition
	KindScalarTypeExtension
	KindObjectTypeDefinition
	KindObjectTypeExtension
	KindInterfaceTypeDefinition
	KindInterfaceTypeExtension
	KindUnionTypeDefinition
	KindUnionTypeExtension
	KindEnumTypeDefinition
	KindEnumTypeExtension
	KindInputObjectTypeDefinition
	KindInputObjectTypeExtension
	KindFieldsDefinition
	KindFieldDefinition
	KindInputFieldsDefinition
	KindInputValueDefinition
	KindArgumentsDefinition
	KindEnumValuesDefinition
	KindEnumValueDefinition
	KindUnionMemberTypes
	KindImplementsInterfaces
	KindDescription
	KindDirectiveDefinition
	KindDirectiveLocations
	KindDirectiveLocation
)

var kindNames = [...]string{
	KindInvalid:                     "Invalid",
	KindDocument:                    "Document",
	KindOperationDefinition:         "OperationDefinition",
	KindFragmentDefinition:          "FragmentDefinition",
	KindVariableDefinitions:         "VariableDefinitions",
	KindVariableDefinition:          "VariableDefinition",
	KindVariable:                    "Variable",
	KindSelectionSet:                "SelectionSet",
	KindField:                       "Field",
	KindAlias:                       "Alias",
	KindArgument:                    "Argument",
	KindArguments:                   "Arguments",
	KindFragmentSpread:              "FragmentSpread",
	KindInlineFragment:              "InlineFragment",
	KindTypeCondition:               "TypeCondition",
	KindDirective:                   "Directive",
	KindDirectives:                  "Directives",
	KindIntValue:                    "IntValue",
	KindFloatValue:                  "FloatValue",
	KindStringValue:                 "StringValue",
	KindBlockStringValue:            "BlockStringValue",
	KindBooleanValue:                "BooleanValue",
	KindNullValue:                   "NullValue",
	KindEnumValue:                   "EnumValue",
	KindListValue:                   "ListValue",
	KindObjectValue:                 "ObjectValue",
	KindObjectField:                 "ObjectField",
	KindNamedType:                   "NamedType",
	KindListType:                    "ListType",
	KindNonNullType:                 "NonNullType",
	KindSchemaDefinition:            "SchemaDefinition",
	KindSchemaExtension:             "SchemaExtension",
	KindRootOperationTypeDefinition: "RootOperationTypeDefinition",
	KindScalarTypeDefinition:        "ScalarTypeDefinition",
	KindScalarTypeExtension:         "ScalarTypeExtension",
	KindObjectTypeDefinition:        "ObjectTypeDefinition",
	KindObjectTypeExtension:         "ObjectTypeExtension",
	KindInterfaceTypeDefinition:     "InterfaceTypeDefinition",
	KindInterfaceTypeExtension:      "InterfaceTypeExtension",
	KindUnionTypeDefinition:         "UnionTypeDefinition",
	KindUnionTypeExtension:          "UnionTypeExtension",
	KindEnumTypeDefinition:          "EnumTypeDefinition",
	KindEnumTypeExtension:           "EnumTypeExtension",
	KindInputObjectTypeDefinition:   "InputObjectTypeDefinition",
	KindInputObjectTypeExtension:    "InputObjectTypeExtension",
	KindFieldsDefinition:            "FieldsDefinition",
	KindFieldDefinition:             "FieldDefinition",
	KindInputFieldsDefinition:       "InputFieldsDefinition",
	KindInputValueDefinition:        "InputValueDefinition",
	KindArgumentsDefinition:         "ArgumentsDefinition",
	KindEnumValuesDefinition:        "EnumValuesDefinition",
	KindEnumValueDefinition:         "EnumValueDefinition",
	KindUnionMemberTypes:            "UnionMemberTypes",
	KindImplementsInterfaces:        "ImplementsInterfaces",
	KindDescription:                 "Description",
	KindDirectiveDefinition:         "DirectiveDefinition",
	KindDirectiveLocations:          "DirectiveLocations",
	KindDirectiveLocation:           "DirectiveLocation",
}

// String implements [fmt.Stringer].
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("ast.Kind(%d)", int(k))
}

// IsTypeSystemExtension reports whether k is one of the `extend ...` kinds.
func (k Kind) IsTypeSystemExtension() bool {
	switch k {
	case KindSchemaExtension, KindScalarTypeExtension, KindObjectTypeExtension,
		KindInterfaceTypeExtension, KindUnionTypeExtension, KindEnumTypeExtension,
		KindInputObjectTypeExtension:
		return true
	default:
		return false
	}
}

// IsValue reports whether k is one of the Value kinds: Variable, the leaf
// literal kinds, ListValue, or ObjectValue.
func (k Kind) IsValue() bool {
	switch k {
	case KindVariable, KindIntValue, KindFloatValue, KindStringValue,
		KindBlockStringValue, KindBooleanValue, KindNullValue, KindEnumValue,
		KindListValue, KindObjectValue:
		return true
	default:
		return false
	}
}
