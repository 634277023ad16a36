// Package diag implements the closed diagnostic taxonomy of spec §7: a
// Code enum, a Diagnostic value carrying a source span and formatting
// arguments, and a Sink interface with a text and a JSON-lines
// implementation.
package diag

// Code identifies one diagnostic kind. The set is closed: builder and
// irgen never construct a Diagnostic with a Code outside this list.
type Code int

const (
	Invalid Code = iota

	// Lookup
	UseOfUndeclaredIdentifier
	NoSuchMember
	MacroDoesNotExist

	// Type-check
	WrongInit
	WrongInitInActparam
	TypecheckBinaryExpr
	UnassignableExpression
	SubscriptedExprNotArray
	ArraySubscriptNotInteger
	CalledExprNotFunction
	MemberReferenceNotStruct
	MemberReferenceNotStructPointer
	ConditionMustBeScalar
	CaseExprNotInteger
	SwitchExprNotInteger
	VoidFuncValuedReturn
	NonvoidFuncVoidReturn
	IncompatibleCondOperands
	AddrofOperandNotLvalue
	IndirectionOperandNotPointer
	IncrementOperandNotScalar
	UnaryOperandNotArithmetic
	UnnotOperandNotInteger
	LognotOperandNotScalar
	UpbOperandNotArray
	EmptyInit
	ExpectedConstantExpression
	ExpectedExpression

	// printf
	PrintfFstNotString
	TooManyPrintfArgs
	WrongPrintfArgumentAmount
	ExpectedFormatSpecifier
	UnknownFormatSpecifier

	// print / printid / getid
	PointerInPrint
	ExpectedIdentifierInPrintid
	ExpectedIdentifierInGetid

	// System / IR
	SuchArrayIsNotSupported
	TooManyArguments
	ArrayBordersCannotBeStaticDynamic

	// Warnings
	VariableDeviation
)

// Severity distinguishes a hard error from a warning. Only
// VariableDeviation is a warning; every other Code is an error.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (c Code) Severity() Severity {
	if c == VariableDeviation {
		return SeverityWarning
	}
	return SeverityError
}

var messages = map[Code]string{
	UseOfUndeclaredIdentifier:          "use of undeclared identifier '%s'",
	NoSuchMember:                       "no member named '%s' in '%s'",
	MacroDoesNotExist:                  "macro '%s' does not exist",
	WrongInit:                          "initializer type mismatch for '%s'",
	WrongInitInActparam:                "wrong initializer type for parameter %d of '%s'",
	TypecheckBinaryExpr:                "invalid operands to binary '%s' ('%s' and '%s')",
	UnassignableExpression:             "expression is not assignable",
	SubscriptedExprNotArray:            "subscripted value is not an array",
	ArraySubscriptNotInteger:           "array subscript is not an integer",
	CalledExprNotFunction:              "called object is not a function",
	MemberReferenceNotStruct:           "member reference base type '%s' is not a struct",
	MemberReferenceNotStructPointer:    "member reference base type '%s' is not a pointer to struct",
	ConditionMustBeScalar:              "condition requires a scalar type, got '%s'",
	CaseExprNotInteger:                 "case expression is not an integer constant",
	SwitchExprNotInteger:               "switch expression is not an integer",
	VoidFuncValuedReturn:               "void function '%s' should not return a value",
	NonvoidFuncVoidReturn:              "non-void function '%s' should return a value",
	IncompatibleCondOperands:           "incompatible operand types in conditional ('%s' and '%s')",
	AddrofOperandNotLvalue:             "cannot take the address of an rvalue",
	IndirectionOperandNotPointer:       "indirection requires pointer operand ('%s' invalid)",
	IncrementOperandNotScalar:          "increment/decrement requires a scalar lvalue",
	UnaryOperandNotArithmetic:          "invalid argument type '%s' to unary expression",
	UnnotOperandNotInteger:             "bitwise not requires an integer operand",
	LognotOperandNotScalar:             "logical not requires a scalar operand",
	UpbOperandNotArray:                 "upb requires an array operand",
	EmptyInit:                         "empty initializer",
	ExpectedConstantExpression:         "expected a constant expression",
	ExpectedExpression:                 "expected an expression",
	PrintfFstNotString:                 "first argument to printf must be a string literal",
	TooManyPrintfArgs:                  "too many arguments to printf",
	WrongPrintfArgumentAmount:          "format string expects %d argument(s), got %d",
	ExpectedFormatSpecifier:            "expected a format specifier after '%%'",
	UnknownFormatSpecifier:             "unknown format specifier '%%%c'",
	PointerInPrint:                     "print cannot format a pointer value",
	ExpectedIdentifierInPrintid:        "printid expects an identifier argument",
	ExpectedIdentifierInGetid:          "getid expects an identifier argument",
	SuchArrayIsNotSupported:            "array type is not supported by this target",
	TooManyArguments:                   "too many arguments to function '%s'",
	ArrayBordersCannotBeStaticDynamic:  "array cannot mix static and dynamic bounds",
	VariableDeviation:                  "comparing floating-point values with '==' or '!=' may be imprecise",
}

// String renders a diagnostic code's symbolic name, used in JSON output
// and test assertions.
func (c Code) String() string {
	if n, ok := codeNames[c]; ok {
		return n
	}
	return "unknown_code"
}

var codeNames = map[Code]string{
	UseOfUndeclaredIdentifier:         "use_of_undeclared_identifier",
	NoSuchMember:                      "no_such_member",
	MacroDoesNotExist:                 "macro_does_not_exist",
	WrongInit:                         "wrong_init",
	WrongInitInActparam:               "wrong_init_in_actparam",
	TypecheckBinaryExpr:               "typecheck_binary_expr",
	UnassignableExpression:            "unassignable_expression",
	SubscriptedExprNotArray:           "subscripted_expr_not_array",
	ArraySubscriptNotInteger:          "array_subscript_not_integer",
	CalledExprNotFunction:             "called_expr_not_function",
	MemberReferenceNotStruct:          "member_reference_not_struct",
	MemberReferenceNotStructPointer:   "member_reference_not_struct_pointer",
	ConditionMustBeScalar:             "condition_must_be_scalar",
	CaseExprNotInteger:                "case_expr_not_integer",
	SwitchExprNotInteger:              "switch_expr_not_integer",
	VoidFuncValuedReturn:              "void_func_valued_return",
	NonvoidFuncVoidReturn:             "nonvoid_func_void_return",
	IncompatibleCondOperands:          "incompatible_cond_operands",
	AddrofOperandNotLvalue:            "addrof_operand_not_lvalue",
	IndirectionOperandNotPointer:      "indirection_operand_not_pointer",
	IncrementOperandNotScalar:         "increment_operand_not_scalar",
	UnaryOperandNotArithmetic:         "unary_operand_not_arithmetic",
	UnnotOperandNotInteger:            "unnot_operand_not_integer",
	LognotOperandNotScalar:            "lognot_operand_not_scalar",
	UpbOperandNotArray:                "upb_operand_not_array",
	EmptyInit:                         "empty_init",
	ExpectedConstantExpression:        "expected_constant_expression",
	ExpectedExpression:                "expected_expression",
	PrintfFstNotString:                "printf_fst_not_string",
	TooManyPrintfArgs:                 "too_many_printf_args",
	WrongPrintfArgumentAmount:         "wrong_printf_argument_amount",
	ExpectedFormatSpecifier:           "expected_format_specifier",
	UnknownFormatSpecifier:            "unknown_format_specifier",
	PointerInPrint:                    "pointer_in_print",
	ExpectedIdentifierInPrintid:       "expected_identifier_in_printid",
	ExpectedIdentifierInGetid:         "expected_identifier_in_getid",
	SuchArrayIsNotSupported:           "such_array_is_not_supported",
	TooManyArguments:                  "too_many_arguments",
	ArrayBordersCannotBeStaticDynamic: "array_borders_cannot_be_static_dynamic",
	VariableDeviation:                 "variable_deviation",
}
