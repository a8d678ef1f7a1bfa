package tools

import (
	"context"
	"time"

	"azure-devops-mcp/internal/agent"
	"azure-devops-mcp/pkg/datemath"
	pkgLog "azure-devops-mcp/pkg/log"
)

type ParseDateFilterTool struct {
	resolver *datemath.Resolver
	now      func() time.Time
	l        pkgLog.Logger
}

// NewParseDateFilterTool creates the date preview tool. A nil now uses time.Now.
func NewParseDateFilterTool(resolver *datemath.Resolver, now func() time.Time, l pkgLog.Logger) *ParseDateFilterTool {
	if now == nil {
		now = time.Now
	}
	return &ParseDateFilterTool{resolver: resolver, now: now, l: l}
}

func (t *ParseDateFilterTool) Name() string {
	return "parse_date_filter"
}

func (t *ParseDateFilterTool) Description() string {
	return "Preview how a natural language date filter resolves to an inclusive YYYY-MM-DD range before using it in a search."
}

func (t *ParseDateFilterTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"date_filter": stringProp(dateFilterDescription),
	}, "date_filter")
}

type ParseDateFilterInput struct {
	DateFilter string `json:"date_filter" validate:"required"`
}

type ParseDateFilterOutput struct {
	Expression string `json:"expression"`
	Form       string `json:"form"`
	From       string `json:"from,omitempty"`
	To         string `json:"to,omitempty"`
	Timezone   string `json:"timezone"`
}

func (t *ParseDateFilterTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params ParseDateFilterInput
	if err := agent.DecodeArgs(input, &params); err != nil {
		return nil, err
	}

	iv, form := t.resolver.ResolveForm(params.DateFilter, t.now())
	t.l.Debugf(ctx, "parse_date_filter: %q -> %s [%s, %s]", params.DateFilter, form, iv.FromString(), iv.ToString())

	return ParseDateFilterOutput{
		Expression: params.DateFilter,
		Form:       string(form),
		From:       iv.FromString(),
		To:         iv.ToString(),
		Timezone:   t.resolver.Location().String(),
	}, nil
}

var _ agent.Tool = (*ParseDateFilterTool)(nil)
