package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"solo_edu_backend/internal/config"
	"solo_edu_backend/internal/model"
	"solo_edu_backend/internal/repository"
	"solo_edu_backend/internal/util"
)

var testRecommendConfig = config.RecommendConfig{
	SearchRadiusMeters: 1500,
	DistanceGateMeters: 1000,
	HotTempF:           96,
	FallbackKeyword:    "cultural heritage",
}

// studentCoord 与 nearSiteCoord 相距约 500 米，与 farSiteCoord 约 2200 米
var (
	studentCoord  = model.Coordinate{Lat: 40.0, Lng: -3.7}
	nearSiteCoord = model.Coordinate{Lat: 40.0045, Lng: -3.7}
	farSiteCoord  = model.Coordinate{Lat: 40.02, Lng: -3.7}
)

type fakeSiteLocator struct {
	site       *model.SiteCandidate
	err        error
	gotKeyword string
	gotRadius  int
}

func (f *fakeSiteLocator) NearestSite(ctx context.Context, coord model.Coordinate, keyword string, radiusMeters int) (*model.SiteCandidate, error) {
	f.gotKeyword = keyword
	f.gotRadius = radiusMeters
	return f.site, f.err
}

type fakeWeather struct {
	report model.WeatherReport
	err    error
	calls  int
}

func (f *fakeWeather) Current(ctx context.Context, coord model.Coordinate) (model.WeatherReport, error) {
	f.calls++
	return f.report, f.err
}

// forbiddenWeather 验证距离门限短路时天气服务根本不被调用
type forbiddenWeather struct {
	t *testing.T
}

func (f *forbiddenWeather) Current(ctx context.Context, coord model.Coordinate) (model.WeatherReport, error) {
	f.t.Fatalf("weather service must not be queried when the distance gate short-circuits")
	return model.WeatherReport{}, nil
}

func site(coord model.Coordinate, open model.OpenStatus, fee model.FeeStatus) *model.SiteCandidate {
	c := coord
	return &model.SiteCandidate{
		Name:       "Almudena Cathedral",
		Address:    "Calle de Bailen 10, Madrid",
		URL:        "https://example.org/almudena",
		Coordinate: &c,
		OpenStatus: open,
		FeeStatus:  fee,
	}
}

func tempF(v float64) *float64 { return &v }

func newReactionService(sites SiteLocator, weather WeatherProvider, kc *model.KnowledgeComponent) *ReactionService {
	history := repository.NewHistoryRepository()
	history.Append(model.AssessmentRecord{
		StudentID:  "s1",
		KCID:       "KC_1",
		SOLOLevel:  model.SOLORelational,
		Location:   "Madrid, Spain",
		Coordinate: studentCoord,
		Timestamp:  "2026-08-29T10:00:00+02:00",
		Timezone:   "Europe/Madrid",
	})
	kcs := repository.NewKCRepository()
	if kc != nil {
		kcs.Save(*kc)
	}
	return NewReactionService(history, kcs, sites, weather, testRecommendConfig)
}

func TestGenerateReactionNoHistory(t *testing.T) {
	s := newReactionService(&fakeSiteLocator{}, &fakeWeather{}, nil)
	if _, err := s.GenerateReaction(context.Background(), "s1", "KC_unknown"); !errors.Is(err, util.ErrNoHistoryForPair) {
		t.Fatalf("err = %v, want ErrNoHistoryForPair", err)
	}
}

func TestDistanceGateSkipsWeather(t *testing.T) {
	locator := &fakeSiteLocator{site: site(farSiteCoord, model.SiteOpen, model.SiteFree)}
	s := newReactionService(locator, &forbiddenWeather{t}, nil)

	reaction, err := s.GenerateReaction(context.Background(), "s1", "KC_1")
	if err != nil {
		t.Fatalf("GenerateReaction: %v", err)
	}
	if reaction.ContextualTask.TaskType != model.TaskVirtual {
		t.Fatalf("task type = %q, want Virtual", reaction.ContextualTask.TaskType)
	}
	if reaction.Weather != nil {
		t.Fatalf("weather = %+v, want null when gate short-circuits", reaction.Weather)
	}
	if reaction.DistanceMeters == nil || *reaction.DistanceMeters < 1000 {
		t.Fatalf("distance = %v, want > 1000", reaction.DistanceMeters)
	}
	if !strings.Contains(reaction.ContextualTask.FeasibilityNotes, "Distance:") {
		t.Fatalf("notes %q must cite the distance", reaction.ContextualTask.FeasibilityNotes)
	}
	if reaction.ContextualTask.Link != "https://example.org/almudena" {
		t.Fatalf("link = %q, want site URL", reaction.ContextualTask.Link)
	}
}

func TestNoSiteFoundIsVirtualWithSentinels(t *testing.T) {
	s := newReactionService(&fakeSiteLocator{site: nil}, &forbiddenWeather{t}, nil)

	reaction, err := s.GenerateReaction(context.Background(), "s1", "KC_1")
	if err != nil {
		t.Fatalf("GenerateReaction: %v", err)
	}
	if reaction.ContextualTask.TaskType != model.TaskVirtual {
		t.Fatalf("task type = %q, want Virtual", reaction.ContextualTask.TaskType)
	}
	if reaction.DistanceMeters != nil {
		t.Fatalf("distance = %v, want unknown", reaction.DistanceMeters)
	}
	if reaction.NearestSite.Name != "unavailable" || reaction.NearestSite.OpenStatus != model.SiteOpenUnknown {
		t.Fatalf("nearest site = %+v, want sentinels", reaction.NearestSite)
	}
	// 无站点 URL 时退回按关键词构造的检索链接
	if !strings.Contains(reaction.ContextualTask.Link, "cultural+heritage") {
		t.Fatalf("link = %q, want keyword search fallback", reaction.ContextualTask.Link)
	}
}

func TestSiteLocatorFailureDegradesNotPropagates(t *testing.T) {
	locator := &fakeSiteLocator{err: errors.New("provider down")}
	s := newReactionService(locator, &forbiddenWeather{t}, nil)

	reaction, err := s.GenerateReaction(context.Background(), "s1", "KC_1")
	if err != nil {
		t.Fatalf("provider failure must not surface: %v", err)
	}
	if reaction.ContextualTask.TaskType != model.TaskVirtual {
		t.Fatalf("task type = %q, want Virtual", reaction.ContextualTask.TaskType)
	}
}

func TestRainyOpenFreeIsIndoor(t *testing.T) {
	locator := &fakeSiteLocator{site: site(nearSiteCoord, model.SiteOpen, model.SiteFree)}
	weather := &fakeWeather{report: model.WeatherReport{Condition: model.WeatherRainy, TempF: tempF(58)}}
	s := newReactionService(locator, weather, nil)

	reaction, err := s.GenerateReaction(context.Background(), "s1", "KC_1")
	if err != nil {
		t.Fatalf("GenerateReaction: %v", err)
	}
	if reaction.ContextualTask.TaskType != model.TaskIndoor {
		t.Fatalf("task type = %q, want Indoor", reaction.ContextualTask.TaskType)
	}
	notes := reaction.ContextualTask.FeasibilityNotes
	for _, want := range []string{"rainy", "58.0°F", "Entry: open", "Fee: free"} {
		if !strings.Contains(notes, want) {
			t.Fatalf("notes %q missing %q", notes, want)
		}
	}
}

func TestHotSunnyOpenFreeIsIndoorByBranchOrder(t *testing.T) {
	// 97°F 晴天：bad_or_hot 命中矩阵第一行，顺序优先于全程游览分支
	locator := &fakeSiteLocator{site: site(nearSiteCoord, model.SiteOpen, model.SiteFree)}
	weather := &fakeWeather{report: model.WeatherReport{Condition: model.WeatherSunny, TempF: tempF(97)}}
	s := newReactionService(locator, weather, nil)

	reaction, _ := s.GenerateReaction(context.Background(), "s1", "KC_1")
	if reaction.ContextualTask.TaskType != model.TaskIndoor {
		t.Fatalf("task type = %q, want Indoor on branch order", reaction.ContextualTask.TaskType)
	}
}

func TestSunnyMildClosedIsOutdoorObservation(t *testing.T) {
	locator := &fakeSiteLocator{site: site(nearSiteCoord, model.SiteClosed, model.SiteFree)}
	weather := &fakeWeather{report: model.WeatherReport{Condition: model.WeatherSunny, TempF: tempF(72)}}
	s := newReactionService(locator, weather, nil)

	reaction, _ := s.GenerateReaction(context.Background(), "s1", "KC_1")
	if reaction.ContextualTask.TaskType != model.TaskOutdoor {
		t.Fatalf("task type = %q, want Outdoor", reaction.ContextualTask.TaskType)
	}
	if reaction.ContextualTask.Title != "Outdoor Observation at Nearby Site" {
		t.Fatalf("title = %q, want exterior observation variant", reaction.ContextualTask.Title)
	}
}

func TestSunnyMildOpenFreeIsFullTour(t *testing.T) {
	locator := &fakeSiteLocator{site: site(nearSiteCoord, model.SiteOpen, model.SiteFree)}
	weather := &fakeWeather{report: model.WeatherReport{Condition: model.WeatherCloudy, TempF: tempF(64)}}
	s := newReactionService(locator, weather, nil)

	reaction, _ := s.GenerateReaction(context.Background(), "s1", "KC_1")
	if reaction.ContextualTask.TaskType != model.TaskOutdoor {
		t.Fatalf("task type = %q, want Outdoor", reaction.ContextualTask.TaskType)
	}
	if reaction.ContextualTask.Title != "On-Site Exploration Tour" {
		t.Fatalf("title = %q, want full tour variant", reaction.ContextualTask.Title)
	}
}

func TestUnknownSignalsFallThroughToVirtual(t *testing.T) {
	locator := &fakeSiteLocator{site: site(nearSiteCoord, model.SiteOpenUnknown, model.SiteFeeUnknown)}
	weather := &fakeWeather{report: model.UnknownWeather()}
	s := newReactionService(locator, weather, nil)

	reaction, _ := s.GenerateReaction(context.Background(), "s1", "KC_1")
	if reaction.ContextualTask.TaskType != model.TaskVirtual {
		t.Fatalf("task type = %q, want Virtual fallback", reaction.ContextualTask.TaskType)
	}
	if reaction.Weather == nil || reaction.Weather.Condition != model.WeatherUnknown {
		t.Fatalf("weather = %+v, want unknown echoed", reaction.Weather)
	}
	if !strings.Contains(reaction.ContextualTask.Reasoning, "weather signal inconclusive") {
		t.Fatalf("reasoning %q must cite the unresolved signal", reaction.ContextualTask.Reasoning)
	}
}

func TestWeatherFailureDegradesToVirtual(t *testing.T) {
	locator := &fakeSiteLocator{site: site(nearSiteCoord, model.SiteOpen, model.SiteFree)}
	weather := &fakeWeather{err: errors.New("weather provider down")}
	s := newReactionService(locator, weather, nil)

	reaction, err := s.GenerateReaction(context.Background(), "s1", "KC_1")
	if err != nil {
		t.Fatalf("weather failure must not surface: %v", err)
	}
	if reaction.ContextualTask.TaskType != model.TaskVirtual {
		t.Fatalf("task type = %q, want Virtual", reaction.ContextualTask.TaskType)
	}
}

func TestSearchKeywordPrecedence(t *testing.T) {
	cases := []struct {
		name string
		kc   *model.KnowledgeComponent
		want string
	}{
		{"kc title", &model.KnowledgeComponent{KCID: "KC_1", Title: "Gothic cathedrals", Description: "desc"}, "Gothic cathedrals"},
		{"kc description", &model.KnowledgeComponent{KCID: "KC_1", Description: "romanesque churches"}, "romanesque churches"},
		{"no kc", nil, "cultural heritage"},
	}
	for _, tc := range cases {
		locator := &fakeSiteLocator{site: nil}
		s := newReactionService(locator, &forbiddenWeather{t}, tc.kc)
		if _, err := s.GenerateReaction(context.Background(), "s1", "KC_1"); err != nil {
			t.Fatalf("%s: %v", tc.name, err)
		}
		if locator.gotKeyword != tc.want {
			t.Fatalf("%s: keyword = %q, want %q", tc.name, locator.gotKeyword, tc.want)
		}
		if locator.gotRadius != 1500 {
			t.Fatalf("%s: radius = %d, want 1500", tc.name, locator.gotRadius)
		}
	}
}
