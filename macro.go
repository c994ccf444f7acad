package excelhelper

import (
	"context"
	"fmt"
)

// MacroRunner is the capability to execute a named VBA macro in the
// workbook through an external automation interface. Implementations are
// platform specific and injected with WithMacroRunner; the library itself
// never executes macro code.
type MacroRunner interface {
	RunMacro(ctx context.Context, macro string) error
}

// RunMacro runs a named macro through the injected MacroRunner. When no
// runner was injected the environment does not support macro execution and
// ErrMacroUnsupported is returned.
func (b *Book) RunMacro(ctx context.Context, macro string) error {
	if b.macro == nil {
		return fmt.Errorf("run macro %q: %w", macro, ErrMacroUnsupported)
	}
	if err := b.macro.RunMacro(ctx, macro); err != nil {
		return fmt.Errorf("run macro %q: %w", macro, err)
	}
	return nil
}

// AttachVBAProject embeds a vbaProject.bin payload into the workbook so it
// can be saved as a macro-enabled file (.xlsm). The macro code itself is
// opaque to this library.
func (b *Book) AttachVBAProject(project []byte) error {
	if err := b.file.AddVBAProject(project); err != nil {
		return fmt.Errorf("attach VBA project: %w", err)
	}
	return nil
}
