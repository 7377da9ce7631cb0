package demangle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDemangle(t *testing.T) {
	type tc struct {
		name   string
		symbol string
		want   string
	}

	tests := []tc{
		{
			name:   "member_function_void_params",
			symbol: "draw__9CGraphicsFv",
			want:   "CGraphics::draw(void)",
		},
		{
			name:   "const_member_function",
			symbol: "GetSize__4FileCFv",
			want:   "File::GetSize(void) const",
		},
		{
			name:   "free_function_pointer_to_const_int",
			symbol: "test__FPCi",
			want:   "test(int const *)",
		},
		{
			name:   "multiple_parameters",
			symbol: "blend__FifPd",
			want:   "blend(int, float, double *)",
		},
		{
			name:   "reference_parameter",
			symbol: "add__3SumFRi",
			want:   "Sum::add(int &)",
		},
		{
			name:   "unsigned_renders_after_base",
			symbol: "set__FUi",
			want:   "set(int unsigned)",
		},
		{
			name:   "multi_dimension_array_declaration_order",
			symbol: "fn__FA4_A3_i",
			want:   "fn(int [4][3])",
		},
		{
			name:   "pointer_to_array",
			symbol: "grid__FPA2_i",
			want:   "grid(int (*) [2])",
		},
		{
			name:   "function_pointer_parameter",
			symbol: "cb__FPFi_v",
			want:   "cb(void (*)(int))",
		},
		{
			name:   "function_pointer_two_params",
			symbol: "apply__FPFif_v",
			want:   "apply(void (*)(int, float))",
		},
		{
			name:   "templated_owner",
			symbol: "fn__11TBox<4Wood>Fv",
			want:   "TBox<Wood>::fn(void)",
		},
		{
			name:   "template_numeric_literals",
			symbol: "get__10TArr<3,-7>Fv",
			want:   "TArr<3, -7>::get(void)",
		},
		{
			name:   "nested_template",
			symbol: "at__10TA<5TB<i>>Fi",
			want:   "TA<TB<int>>::at(int)",
		},
		{
			name:   "templated_identifier",
			symbol: "run<5Timer>__3AppFv",
			want:   "App::run<Timer>(void)",
		},
		{
			name:   "qualified_owner",
			symbol: "init__Q24Full4TinyFf",
			want:   "Full::Tiny::init(float)",
		},
		{
			name:   "data_symbol_no_parentheses",
			symbol: "gCount__8Registry",
			want:   "Registry::gCount",
		},
		{
			name:   "signature_marker_without_parameters",
			symbol: "run__3AppF",
			want:   "App::run",
		},
		{
			name:   "unmangled_name_passes_through",
			symbol: "main",
			want:   "main",
		},
		{
			name:   "empty_input",
			symbol: "",
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Demangle(tt.symbol))
		})
	}
}

// The identifier/signature split picks the right-most "__" in the remainder.
// Identifiers that themselves contain "__" before the true separator decode
// correctly; ones that contain "__" after it are a known ambiguity of the
// scheme and mis-split by design.
func TestDemangleSeparatorHeuristic(t *testing.T) {
	type tc struct {
		name   string
		symbol string
		want   string
	}

	tests := []tc{
		{
			name:   "identifier_with_internal_separator",
			symbol: "do__it__6WidgetFv",
			want:   "Widget::do__it(void)",
		},
		{
			name:   "leading_underscores_kept_in_identifier",
			symbol: "__ct__4FileFv",
			want:   "File::__ct(void)",
		},
		{
			name:   "no_separator_consumes_everything",
			symbol: "arena_hi",
			want:   "arena_hi",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Demangle(tt.symbol))
		})
	}
}

func TestDemangleSentinel(t *testing.T) {
	// A signature that collapses to a bare "i" marks the symbol as
	// unmangleable; the exact output shape is part of the contract.
	require.Equal(t, "int::state", Demangle("state__i"))
	require.Equal(t, "int::", Demangle("__i"))

	require.True(t, IsSentinel(Demangle("state__i")))
	require.True(t, IsSentinel(Demangle("__i")))
	require.False(t, IsSentinel(Demangle("draw__9CGraphicsFv")))

	require.Equal(t, Sentinel, Demangle("__i"))
}

func TestDemangleMalformedInput(t *testing.T) {
	type tc struct {
		name   string
		symbol string
		want   string
	}

	tests := []tc{
		{
			name:   "truncated_qualified_name",
			symbol: "foo__Q",
			want:   "foo",
		},
		{
			name:   "digit_run_at_end_is_literal",
			symbol: "x__5",
			want:   "5::x",
		},
		{
			name:   "garbage_passes_through",
			symbol: "Zz!!",
			want:   "Zz!!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Demangle(tt.symbol))
		})
	}
}

func TestDemangleDeterministic(t *testing.T) {
	inputs := []string{
		"",
		"draw__9CGraphicsFv",
		"fn__11TBox<4Wood>Fv",
		"foo__Q",
		"__i",
		"A4_A3_",
		"____",
		"F_F_F_",
		"<<<>>>",
		"9short",
		"-",
	}

	for _, in := range inputs {
		first := Demangle(in)
		require.Equal(t, first, Demangle(in), "input %q", in)
	}
}

func TestParse(t *testing.T) {
	sym := Parse("GetSize__4FileCFv")

	require.Equal(t, "GetSize__4FileCFv", sym.Raw)
	require.Equal(t, "File", sym.Owner)
	require.Equal(t, "GetSize", sym.Name)
	require.Equal(t, "void", sym.Params)
	require.True(t, sym.Const)
	require.True(t, sym.IsMember())
	require.False(t, sym.Unmangleable())
	require.Equal(t, Demangle("GetSize__4FileCFv"), sym.String())
}

func TestParseFreeFunction(t *testing.T) {
	sym := Parse("test__FPCi")

	require.Empty(t, sym.Owner)
	require.False(t, sym.IsMember())
	require.Equal(t, "test", sym.Name)
	require.Equal(t, "int const *", sym.Params)
	require.False(t, sym.Const)
}

func TestParseUnmangleable(t *testing.T) {
	sym := Parse("state__i")

	require.True(t, sym.Unmangleable())
	require.Equal(t, "int", sym.Owner)
}
