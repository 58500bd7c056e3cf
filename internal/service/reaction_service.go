package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"solo_edu_backend/internal/config"
	"solo_edu_backend/internal/model"
	"solo_edu_backend/internal/repository"
	"solo_edu_backend/internal/util"
	"solo_edu_backend/pkg/geo"
	"solo_edu_backend/pkg/logger"
	"solo_edu_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// WeatherProvider 天气查询能力接口
type WeatherProvider interface {
	Current(ctx context.Context, coord model.Coordinate) (model.WeatherReport, error)
}

// SiteLocator 附近兴趣点查询能力接口，无结果返回 nil
type SiteLocator interface {
	NearestSite(ctx context.Context, coord model.Coordinate, keyword string, radiusMeters int) (*model.SiteCandidate, error)
}

// ReactionService 情境任务推荐的决策核心
type ReactionService struct {
	history *repository.HistoryRepository
	kcs     *repository.KCRepository
	sites   SiteLocator
	weather WeatherProvider

	mu  sync.RWMutex
	cfg config.RecommendConfig
}

func NewReactionService(
	history *repository.HistoryRepository,
	kcs *repository.KCRepository,
	sites SiteLocator,
	weather WeatherProvider,
	cfg config.RecommendConfig,
) *ReactionService {
	return &ReactionService{
		history: history,
		kcs:     kcs,
		sites:   sites,
		weather: weather,
		cfg:     cfg,
	}
}

// UpdateConfig 配置热更新回调
func (s *ReactionService) UpdateConfig(cfg config.RecommendConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
}

func (s *ReactionService) recommendConfig() config.RecommendConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// LocationBlock 推荐响应中回显的学生位置
type LocationBlock struct {
	Label      string           `json:"label"`
	Coordinate model.Coordinate `json:"coordinate"`
	Timestamp  string           `json:"timestamp"`
	Timezone   string           `json:"timezone"`
}

// Reaction generate-reaction 的完整响应
// Weather 为 null 表示距离门限直接短路，天气根本没有查询
type Reaction struct {
	StudentID      string                   `json:"student_id"`
	KCID           string                   `json:"kc_id"`
	SOLOLevel      string                   `json:"SOLO_level"`
	Location       LocationBlock            `json:"location"`
	NearestSite    model.SiteCandidate      `json:"nearest_site"`
	DistanceMeters *float64                 `json:"distance_meters"`
	Weather        *model.WeatherReport     `json:"weather"`
	ContextualTask model.TaskRecommendation `json:"contextual_task"`
}

// GenerateReaction 推荐流程：
// 最近一条历史记录定位学生 → KC 推导搜索关键词 → 附近站点 → 距离
// 门限优先判定，太远或距离未知时不查天气直接给 Virtual 任务；
// 门限以内再查天气并走决策矩阵。
// 前置条件满足后任何上游失败都降级为占位值，不向调用方抛错。
func (s *ReactionService) GenerateReaction(ctx context.Context, studentID, kcID string) (*Reaction, error) {
	cfg := s.recommendConfig()

	rec, ok := s.history.Latest(studentID, kcID)
	if !ok {
		return nil, util.ErrNoHistoryForPair
	}

	// 学生位置以历史记录的坐标为准，不重新地理编码
	keyword := s.searchKeyword(kcID, cfg)

	site, err := s.sites.NearestSite(ctx, rec.Coordinate, keyword, cfg.SearchRadiusMeters)
	if err != nil {
		logger.Log.Warn("places lookup failed, treating as no site",
			zap.String("keyword", keyword),
			zap.Error(err))
		monitoring.ProviderFailureCounter.WithLabelValues("places").Inc()
		site = nil
	}

	siteOut := model.UnknownSite()
	var distance *float64
	if site != nil {
		siteOut = *site
		if site.Coordinate != nil {
			d := geo.Haversine(rec.Coordinate, *site.Coordinate)
			distance = &d
		}
	}

	reaction := &Reaction{
		StudentID: rec.StudentID,
		KCID:      rec.KCID,
		SOLOLevel: rec.SOLOLevel,
		Location: LocationBlock{
			Label:      rec.Location,
			Coordinate: rec.Coordinate,
			Timestamp:  rec.Timestamp,
			Timezone:   rec.Timezone,
		},
		NearestSite:    siteOut,
		DistanceMeters: distance,
	}

	// 距离门限无条件先判：太远时现场任务不可行，不浪费天气查询
	if distance == nil || *distance > cfg.DistanceGateMeters {
		reaction.ContextualTask = farVirtualTask(keyword, siteOut, distance, cfg)
		monitoring.RecommendationCounter.WithLabelValues(string(model.TaskVirtual)).Inc()
		return reaction, nil
	}

	weather, err := s.weather.Current(ctx, rec.Coordinate)
	if err != nil {
		logger.Log.Warn("weather lookup failed, degrading to unknown", zap.Error(err))
		monitoring.ProviderFailureCounter.WithLabelValues("weather").Inc()
		weather = model.UnknownWeather()
	}
	reaction.Weather = &weather

	task := decide(cfg, keyword, siteOut, *distance, weather)
	reaction.ContextualTask = task
	monitoring.RecommendationCounter.WithLabelValues(string(task.TaskType)).Inc()
	return reaction, nil
}

// searchKeyword KC 标题优先，其次描述，都没有用通用回退关键词
func (s *ReactionService) searchKeyword(kcID string, cfg config.RecommendConfig) string {
	kc, ok := s.kcs.Get(kcID)
	if !ok {
		return cfg.FallbackKeyword
	}
	if kc.Title != "" {
		return kc.Title
	}
	if kc.Description != "" {
		return kc.Description
	}
	return cfg.FallbackKeyword
}

// decide 决策矩阵，自上而下求值，条件有重叠时以顺序为准
func decide(cfg config.RecommendConfig, keyword string, site model.SiteCandidate, distance float64, weather model.WeatherReport) model.TaskRecommendation {
	badOrHot := weather.Condition == model.WeatherRainy ||
		weather.Condition == model.WeatherStormy ||
		(weather.TempF != nil && *weather.TempF > cfg.HotTempF)

	mildCondition := weather.Condition == model.WeatherSunny ||
		weather.Condition == model.WeatherClear ||
		weather.Condition == model.WeatherCloudy
	goodAndMild := mildCondition && weather.TempF != nil && *weather.TempF <= cfg.HotTempF

	siteOpen := site.OpenStatus == model.SiteOpen
	siteFree := site.FeeStatus == model.SiteFree

	notes := feasibilityNotes(distance, &weather, site)

	switch {
	case badOrHot && siteOpen && siteFree:
		return model.TaskRecommendation{
			TaskType:         model.TaskIndoor,
			Title:            "Indoor Exploration at Nearby Site",
			Description:      "Visit the entrance hall or interior of " + site.Name + " and analyze one symbolic element while sheltered from the weather.",
			Link:             site.URL,
			FeasibilityNotes: notes,
			Reasoning:        "Bad weather or high temperature. Student is within 1 km of a free, open site, so an indoor task is safer and feasible.",
		}
	case goodAndMild && !(siteOpen && siteFree):
		return model.TaskRecommendation{
			TaskType:         model.TaskOutdoor,
			Title:            "Outdoor Observation at Nearby Site",
			Description:      "Sketch or photograph an external feature of " + site.Name + " and describe how it supports the topic.",
			Link:             site.URL,
			FeasibilityNotes: notes,
			Reasoning:        "Weather is good. Student is close to the site, but it is not accessible indoors, so an outdoor task is recommended.",
		}
	case goodAndMild && siteOpen && siteFree:
		return model.TaskRecommendation{
			TaskType:         model.TaskOutdoor,
			Title:            "On-Site Exploration Tour",
			Description:      "Take a full tour of " + site.Name + ", inside and out, and document how its features express the topic.",
			Link:             site.URL,
			FeasibilityNotes: notes,
			Reasoning:        "Weather is good and the site is open and free. A full on-site tour is feasible.",
		}
	default:
		return model.TaskRecommendation{
			TaskType:         model.TaskVirtual,
			Title:            "Explore a Heritage Website",
			Description:      "Browse an official cultural heritage website related to the topic and summarize one new insight you gained.",
			Link:             virtualLink(keyword, site),
			FeasibilityNotes: notes,
			Reasoning:        "Conditions or data are incomplete (" + strings.Join(unresolvedSignals(badOrHot, goodAndMild, siteOpen, siteFree, weather), "; ") + "). Defaulting to a safe digital learning task.",
		}
	}
}

// farVirtualTask 距离门限短路的 Virtual 任务，天气未查询
func farVirtualTask(keyword string, site model.SiteCandidate, distance *float64, cfg config.RecommendConfig) model.TaskRecommendation {
	var notes, reasoning string
	if distance != nil {
		notes = fmt.Sprintf("Distance: %.0f meters (beyond the %.0f m gate), weather not checked, Entry: %s, Fee: %s",
			*distance, cfg.DistanceGateMeters, site.OpenStatus, site.FeeStatus)
		reasoning = "Student is too far from the nearest site for an on-site visit. Digital exploration is the most viable option."
	} else {
		notes = fmt.Sprintf("Distance: unknown (no located site), weather not checked, Entry: %s, Fee: %s",
			site.OpenStatus, site.FeeStatus)
		reasoning = "No nearby site could be located. Digital exploration is the most viable option."
	}

	return model.TaskRecommendation{
		TaskType:         model.TaskVirtual,
		Title:            "Online Archive Analysis",
		Description:      "Watch a virtual tour or video about the topic, then write a short reflection comparing it with what you have previously learned.",
		Link:             virtualLink(keyword, site),
		FeasibilityNotes: notes,
		Reasoning:        reasoning,
	}
}

func virtualLink(keyword string, site model.SiteCandidate) string {
	if site.URL != "" {
		return site.URL
	}
	return "https://www.google.com/search?q=" + url.QueryEscape(keyword)
}

// feasibilityNotes 可审计性要求：每个分支都要写明决策用到的
// 距离、天气和站点状态数值
func feasibilityNotes(distance float64, weather *model.WeatherReport, site model.SiteCandidate) string {
	temp := "unknown"
	if weather.TempF != nil {
		temp = fmt.Sprintf("%.1f°F", *weather.TempF)
	}
	return fmt.Sprintf("Weather: %s, Temperature: %s, Distance: %.0f meters, Entry: %s, Fee: %s",
		weather.Condition, temp, distance, site.OpenStatus, site.FeeStatus)
}

func unresolvedSignals(badOrHot, goodAndMild, siteOpen, siteFree bool, weather model.WeatherReport) []string {
	var signals []string
	if !badOrHot && !goodAndMild {
		signals = append(signals, "weather signal inconclusive: "+weather.Condition)
	}
	if weather.TempF == nil {
		signals = append(signals, "temperature unknown")
	}
	if badOrHot {
		if !siteOpen {
			signals = append(signals, "site not confirmed open during bad weather")
		}
		if !siteFree {
			signals = append(signals, "site not confirmed free during bad weather")
		}
	}
	if len(signals) == 0 {
		signals = append(signals, "mixed signals")
	}
	return signals
}
