package commands

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go.trai.ch/artcache/internal/adapters/diskcache" //nolint:depguard // Rendered by the CLI
	"go.trai.ch/artcache/internal/ui/output"
	"go.trai.ch/artcache/internal/ui/style"
)

// renderReport prints a one-line summary of a cleanup pass.
func renderReport(w io.Writer, op string, r diskcache.CleanupReport) {
	out := output.New(w)
	icon := output.Paint(out, style.Check, style.Green)
	if r.Failed > 0 {
		icon = output.Paint(out, style.Warning, style.Yellow)
	}
	_, _ = fmt.Fprintf(w, "%s %s: %s\n", icon, op, r)
}

// RenderInspection prints the state of a preservation file.
func RenderInspection(w io.Writer, in diskcache.Inspection) {
	out := output.New(w)

	switch {
	case !in.Exists:
		_, _ = fmt.Fprintf(w, "%s %s is not preserved\n", output.Paint(out, style.Circle, style.Slate), in.Key)
	case in.Err != nil:
		_, _ = fmt.Fprintf(w, "%s %s is unreadable\n", output.Paint(out, style.Cross, style.Red), in.Key)
	case in.Sentineled:
		_, _ = fmt.Fprintf(w, "%s %s is marked for deletion\n", output.Paint(out, style.Warning, style.Yellow), in.Key)
	default:
		_, _ = fmt.Fprintf(w, "%s %s\n", output.Paint(out, style.Dot, style.Green), in.Key)
	}

	field := func(name, value string) {
		_, _ = fmt.Fprintf(w, "  %s %s\n", output.Paint(out, fmt.Sprintf("%-13s", name+":"), style.Slate), value)
	}

	field("file", in.FileName)
	if !in.Exists {
		return
	}
	field("size", fmt.Sprintf("%d bytes", in.Size))
	if in.Err != nil {
		field("error", in.Err.Error())
		return
	}

	a := in.Artifact
	field("category", a.Category.String())
	if a.VirtualPath != "" {
		field("virtual path", a.VirtualPath)
	}
	if a.HasModule() {
		field("module", a.Module.Name)
	}
	field("built", a.BuiltAt.UTC().Format(time.RFC3339))
	if len(a.Inputs) > 0 {
		field("inputs", strings.Join(a.Inputs, ", "))
	}
	field("payload", fmt.Sprintf("%d bytes", len(a.Payload)))
}
