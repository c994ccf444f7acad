package excelhelper

// defaultFitPadding is the extra width AutoFitColumns adds beyond the
// longest value, in characters.
const defaultFitPadding = 2

// Option configures a Book at creation time.
type Option func(*Book)

// WithMacroRunner injects the capability to run VBA macros through an
// external automation interface. Without it, RunMacro returns
// ErrMacroUnsupported.
func WithMacroRunner(r MacroRunner) Option {
	return func(b *Book) { b.macro = r }
}

// WithFitPadding sets the extra width AutoFitColumns adds beyond the
// longest value (default: 2).
func WithFitPadding(padding float64) Option {
	return func(b *Book) { b.fitPadding = padding }
}

// WithPassword supplies the password for opening protected workbooks.
func WithPassword(password string) Option {
	return func(b *Book) { b.password = password }
}
