package content

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draftsmith-ai/draftsmith/internal/core"
	"github.com/draftsmith-ai/draftsmith/internal/testutil"
)

func newTestPipeline(t *testing.T, deps Deps, opts ...Option) *Pipeline {
	t.Helper()
	if deps.Model == nil {
		deps.Model = &testutil.ScriptedModel{}
	}
	if deps.Charts == nil {
		deps.Charts = &testutil.StubRenderer{}
	}
	if deps.Writers == nil {
		deps.Writers = &testutil.StubRegistry{Writer: &testutil.StubWriter{Filename: "out.file"}}
	}
	return New(deps, Config{}, opts...)
}

func TestRun_PresentationScenario(t *testing.T) {
	model := &testutil.ScriptedModel{Responses: []string{
		"presentation",
		"Title text", "Intro text", "Main points text", "Data text", "Conclusion text",
	}}
	writer := &testutil.StubWriter{Filename: "renewable_presentation.pptx"}
	renderer := &testutil.StubRenderer{}
	p := newTestPipeline(t, Deps{
		Model:   model,
		Web:     &testutil.StaticSearcher{Results: []core.SearchResult{{Title: "W", URL: "https://example.com/w", Snippet: "web"}}},
		Charts:  renderer,
		Writers: &testutil.StubRegistry{Writer: writer},
	})

	state, err := p.Run(context.Background(), "Create a presentation on renewable energy trends")
	require.NoError(t, err)

	assert.Equal(t, core.ContentTypePresentation, state.ContentType)
	require.NotNil(t, state.ContentPlan)
	assert.Len(t, state.ContentPlan.Sections, 5)
	assert.Equal(t, 5, state.ContentPlan.Slides)
	assert.Len(t, state.Generated, 5)
	assert.Equal(t, "Title", state.Generated[0].Name)
	assert.Len(t, state.Visuals, 1)
	assert.Equal(t, "chart", state.Visuals[0].Type)
	assert.Equal(t, "modern_slides", state.Template)
	require.NotNil(t, state.FinalOutput)
	assert.Equal(t, []string{"renewable_presentation.pptx"}, state.FinalOutput.FilesCreated)
	assert.Len(t, renderer.Rendered, 1)
	assert.NotEmpty(t, state.RunID)
}

func TestRun_WebpageSkipsVisuals(t *testing.T) {
	model := &testutil.ScriptedModel{Responses: []string{"a simple webpage", "text"}}
	renderer := &testutil.StubRenderer{}
	p := newTestPipeline(t, Deps{Model: model, Charts: renderer})

	state, err := p.Run(context.Background(), "Make a page about tea")
	require.NoError(t, err)

	assert.Equal(t, core.ContentTypeWebpage, state.ContentType)
	assert.Empty(t, state.Visuals)
	assert.Empty(t, renderer.Rendered)
	assert.Equal(t, "clean_web", state.Template)
	assert.Len(t, state.ContentPlan.Sections, 4)
}

func TestRun_AllCollaboratorsFailUsesFallback(t *testing.T) {
	model := &testutil.ScriptedModel{Responses: []string{"webpage", "text"}}
	p := newTestPipeline(t, Deps{
		Model:  model,
		Web:    testutil.FailingSearcher{},
		Wiki:   testutil.FailingEncyclopedia{},
		Papers: testutil.FailingSearcher{},
	})

	state, err := p.Run(context.Background(), "obscure topic nobody indexed")
	require.NoError(t, err)

	require.Len(t, state.SearchResults, 2)
	assert.Equal(t, "Academic Research: obscure topic nobody indexed", state.SearchResults[0].Title)
	assert.Equal(t, "https://scholar.google.com", state.SearchResults[0].URL)
	assert.Equal(t, "Industry Analysis: obscure topic nobody indexed", state.SearchResults[1].Title)
	assert.NotEmpty(t, state.VerifiedSources)
}

func TestRun_EmptyQueryRejected(t *testing.T) {
	p := newTestPipeline(t, Deps{})
	_, err := p.Run(context.Background(), "   ")
	require.Error(t, err)
	assert.True(t, core.IsCategory(err, core.ErrCatValidation))
}

func TestRun_ModelFailureDegradesToWebpage(t *testing.T) {
	model := &testutil.ScriptedModel{Err: core.ErrCollaborator(core.CodeModelFailed, "down")}
	p := newTestPipeline(t, Deps{Model: model})

	state, err := p.Run(context.Background(), "anything at all")
	require.NoError(t, err)
	assert.Equal(t, core.ContentTypeWebpage, state.ContentType)
	// Generation placeholders instead of aborting.
	require.Len(t, state.Generated, 4)
	assert.Contains(t, state.Generated[0].Text, "unavailable")
}

func TestRun_InjectedRetryPolicyTripsBudget(t *testing.T) {
	model := &testutil.ScriptedModel{Responses: []string{"webpage"}}
	p := New(Deps{
		Model:   model,
		Charts:  &testutil.StubRenderer{},
		Writers: &testutil.StubRegistry{Writer: &testutil.StubWriter{Filename: "f"}},
	}, Config{MaxSteps: 10}, WithResearchPolicy(func(*core.ContentState) string {
		return "retry"
	}))

	_, err := p.Run(context.Background(), "loop forever")
	require.Error(t, err)
	assert.True(t, core.IsCategory(err, core.ErrCatLimit))
}

func TestGraph_RoutingTableIsComplete(t *testing.T) {
	p := newTestPipeline(t, Deps{})
	g, err := p.Graph()
	require.NoError(t, err)
	assert.Len(t, g.Nodes(), 8)
}

func TestVerify_CredibilityByDomain(t *testing.T) {
	tests := []struct {
		url  string
		want float64
	}{
		{"https://www.mit.edu/research", 0.8},
		{"https://www.usa.gov/page", 0.8},
		{"https://example.org/a", 0.8},
		{"https://example.com/a", 0.6},
		{"https://education.com", 0.6},
		{"https://gov.example.net", 0.6},
		{"not a url at all", 0.6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, credibilityFor(tt.url), tt.url)
	}
}

func TestVerify_SortedAndMean(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	p := newTestPipeline(t, Deps{})

	domains := []string{"edu", "gov", "org", "com", "net", "io"}
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(12)
		state := &core.ContentState{Query: "q"}
		for i := 0; i < n; i++ {
			d := domains[rng.Intn(len(domains))]
			state.SearchResults = append(state.SearchResults, core.SearchResult{
				Title: fmt.Sprintf("source %d", i),
				URL:   fmt.Sprintf("https://host%d.%s/page", i, d),
			})
		}

		require.NoError(t, p.verify(context.Background(), state))

		var sum float64
		for i, v := range state.VerifiedSources {
			sum += v.CredibilityScore
			if i > 0 {
				assert.GreaterOrEqual(t, state.VerifiedSources[i-1].CredibilityScore, v.CredibilityScore)
			}
		}
		if n == 0 {
			assert.Zero(t, state.QualityScore)
		} else {
			assert.InDelta(t, sum/float64(n), state.QualityScore, 1e-9)
		}
	}
}

func TestVerify_StableOnTies(t *testing.T) {
	p := newTestPipeline(t, Deps{})
	state := &core.ContentState{
		SearchResults: []core.SearchResult{
			{Title: "first com", URL: "https://a.com"},
			{Title: "an edu", URL: "https://b.edu"},
			{Title: "second com", URL: "https://c.com"},
		},
	}
	require.NoError(t, p.verify(context.Background(), state))
	require.Len(t, state.VerifiedSources, 3)
	assert.Equal(t, "an edu", state.VerifiedSources[0].Title)
	assert.Equal(t, "first com", state.VerifiedSources[1].Title)
	assert.Equal(t, "second com", state.VerifiedSources[2].Title)
}

func TestPlan_Idempotent(t *testing.T) {
	p := newTestPipeline(t, Deps{})
	for _, ct := range []core.ContentType{
		core.ContentTypePresentation,
		core.ContentTypeDocument,
		core.ContentTypeWebpage,
	} {
		a := &core.ContentState{ContentType: ct}
		b := &core.ContentState{ContentType: ct}
		require.NoError(t, p.plan(context.Background(), a))
		require.NoError(t, p.plan(context.Background(), a))
		require.NoError(t, p.plan(context.Background(), b))
		assert.Equal(t, b.ContentPlan, a.ContentPlan, ct)
	}
}

func TestResearch_TruncatesSnippets(t *testing.T) {
	long := strings.Repeat("x", 500)
	p := newTestPipeline(t, Deps{
		Web:    &testutil.StaticSearcher{Results: []core.SearchResult{{Title: "w", URL: "https://w.com", Snippet: long}}},
		Papers: &testutil.StaticSearcher{Results: []core.SearchResult{{Title: "p", URL: "https://p.com", Snippet: long}}},
	})
	state := &core.ContentState{Query: "q"}
	require.NoError(t, p.research(context.Background(), state))

	require.Len(t, state.SearchResults, 2)
	assert.Len(t, state.SearchResults[0].Snippet, snippetLimit+3)
	assert.True(t, strings.HasSuffix(state.SearchResults[0].Snippet, "..."))
	assert.Len(t, state.SearchResults[1].Snippet, paperSnippetLimit+3)
}

func TestTruncate_CountsRunesNotBytes(t *testing.T) {
	// A multibyte rune straddling the cap must never be split; broken
	// UTF-8 would otherwise leak into prompts, JSON and HTML output.
	accented := strings.Repeat("a", snippetLimit-1) + "é é é"
	got := truncate(accented, snippetLimit)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, snippetLimit+3, utf8.RuneCountInString(got))
	assert.True(t, strings.HasSuffix(got, "é..."))

	cjk := strings.Repeat("風力発電", 100)
	got = truncate(cjk, snippetLimit)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, snippetLimit+3, utf8.RuneCountInString(got))

	short := "énergie renouvelable"
	assert.Equal(t, short, truncate(short, snippetLimit))
}

func TestGenerate_PromptEmbedsTopSources(t *testing.T) {
	model := &testutil.ScriptedModel{Responses: []string{"section text"}}
	p := newTestPipeline(t, Deps{Model: model})
	state := &core.ContentState{
		Query:       "solar",
		ContentType: core.ContentTypeWebpage,
		ContentPlan: &core.ContentPlan{Sections: []string{"Header", "Overview"}},
		VerifiedSources: []core.VerifiedSource{
			{SearchResult: core.SearchResult{Title: "Top Source", Snippet: "top snippet"}, CredibilityScore: 0.8},
		},
	}

	require.NoError(t, p.generate(context.Background(), state))
	assert.Equal(t, 2, model.Calls())
	assert.True(t, model.PromptContaining("Top Source: top snippet"))
	assert.True(t, model.PromptContaining("Generate Header content for webpage about: solar"))
}

func TestGenerate_RequiresPlan(t *testing.T) {
	p := newTestPipeline(t, Deps{})
	err := p.generate(context.Background(), &core.ContentState{Query: "q"})
	require.Error(t, err)
	assert.True(t, core.IsCategory(err, core.ErrCatState))
}

func TestVisuals_ChartFilenameFromQuery(t *testing.T) {
	renderer := &testutil.StubRenderer{}
	p := newTestPipeline(t, Deps{Charts: renderer})
	state := &core.ContentState{
		Query:       "renewable energy: 2026 trends!",
		ContentType: core.ContentTypePresentation,
	}
	require.NoError(t, p.visuals(context.Background(), state))
	require.Len(t, state.Visuals, 1)
	assert.Equal(t, "chart_renewable_energy_2026_trends.png", state.Visuals[0].Filename)
	assert.NotEmpty(t, state.Visuals[0].Data)
}

func TestVisuals_RenderFailureTolerated(t *testing.T) {
	p := newTestPipeline(t, Deps{
		Charts: &testutil.StubRenderer{Err: core.ErrCollaborator(core.CodeRenderFailed, "no display")},
	})
	state := &core.ContentState{Query: "q", ContentType: core.ContentTypeDocument}
	require.NoError(t, p.visuals(context.Background(), state))
	assert.Empty(t, state.Visuals)
}

func TestAssemble_WriteFailureKeepsAssembly(t *testing.T) {
	writer := &testutil.StubWriter{Err: core.ErrCollaborator(core.CodeWriteFailed, "disk full")}
	p := newTestPipeline(t, Deps{Writers: &testutil.StubRegistry{Writer: writer}})
	state := &core.ContentState{
		Query:       "q",
		ContentType: core.ContentTypeWebpage,
		Template:    "clean_web",
		Generated:   []core.Section{{Name: "Header", Text: "h"}},
	}
	require.NoError(t, p.assemble(context.Background(), state))
	require.NotNil(t, state.FinalOutput)
	assert.Empty(t, state.FinalOutput.FilesCreated)
	assert.Equal(t, "clean_web", state.FinalOutput.Template)
}

func TestTemplate_DefaultFallback(t *testing.T) {
	p := newTestPipeline(t, Deps{})
	state := &core.ContentState{ContentType: core.ContentType("spreadsheet")}
	require.NoError(t, p.selectTemplate(context.Background(), state))
	assert.Equal(t, "default", state.Template)
}
