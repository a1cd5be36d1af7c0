package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/graft/pkg/domain"
)

// GenerateMermaid produces a Mermaid flowchart of a frozen plan.
// It applies semantic styling:
// - Input column: [/Parallelogram/]
// - Transformer: [[Subroutine]]
// - Output column: [Rectangle]
// Selected inputs are highlighted and feed the transformer; passthrough
// columns flow to the output on a dotted line.
func GenerateMermaid(transformer string, record *domain.FitRecord) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	tID := "t_" + sanitizeMermaidID(transformer)
	sb.WriteString(fmt.Sprintf("    %s[[\"%s\"]]\n", tID, transformer))

	for _, name := range record.AllInputs {
		sb.WriteString(fmt.Sprintf("    %s[/\"%s\"/]\n", inID(name), name))
	}
	for _, name := range record.UsedInputs {
		sb.WriteString(fmt.Sprintf("    %s --> %s\n", inID(name), tID))
	}
	for _, name := range record.CreatedOutputs {
		sb.WriteString(fmt.Sprintf("    %s --> %s[\"%s\"]\n", tID, outID(name), name))
	}

	// Columns the transformer never touches keep flowing to the output.
	// The output block is always passthrough first, created last.
	passthrough := record.AllOutputs[:len(record.AllOutputs)-len(record.CreatedOutputs)]
	for _, name := range passthrough {
		sb.WriteString(fmt.Sprintf("    %s -.-> %s[\"%s\"]\n", inID(name), outID(name), name))
	}

	if len(record.UsedInputs) > 0 {
		sb.WriteString("\n    %% Selection Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef selected fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		for _, name := range record.UsedInputs {
			sb.WriteString(fmt.Sprintf("    class %s selected;\n", inID(name)))
		}
	}

	return sb.String()
}

func inID(name string) string  { return "in_" + sanitizeMermaidID(name) }
func outID(name string) string { return "out_" + sanitizeMermaidID(name) }

func sanitizeMermaidID(id string) string {
	s := strings.ReplaceAll(id, ".", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.ReplaceAll(s, " ", "_")
	return s
}
