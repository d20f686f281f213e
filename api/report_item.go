package api

import (
	"encoding/json"
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aidancornelius/murmur-api/schema"
	"github.com/aidancornelius/murmur-api/score"
	"github.com/aidancornelius/murmur-api/utils"
)

var loadCategoryNames = map[schema.LoadCategory]string{
	schema.LoadCategoryActivity: "Activity",
	schema.LoadCategoryMeal:     "Meals",
	schema.LoadCategorySleep:    "Sleep",
	schema.LoadCategorySymptom:  "Symptoms",
}

type reportItem struct {
	ID           string             `json:"id"`
	Name         string             `json:"name"`
	Value        *float64           `json:"value"`
	ChangeRate   *float64           `json:"change_rate"`
	Distribution map[string]float64 `json:"distribution"`
}

func (r *reportItem) MarshalJSON() ([]byte, error) {
	distribution := map[string]float64{}
	if r.Distribution != nil {
		distribution = r.Distribution
	}
	return json.Marshal(&struct {
		ID           string             `json:"id"`
		Name         string             `json:"name"`
		Value        *float64           `json:"value"`
		ChangeRate   *float64           `json:"change_rate"`
		Distribution map[string]float64 `json:"distribution"`
	}{
		ID:           r.ID,
		Name:         r.Name,
		Value:        r.Value,
		ChangeRate:   r.ChangeRate,
		Distribution: distribution,
	})
}

func breakdownCategories(b schema.LoadBreakdown) map[schema.LoadCategory]float64 {
	return map[schema.LoadCategory]float64{
		schema.LoadCategoryActivity: b.ActivityLoad,
		schema.LoadCategoryMeal:     b.MealLoad,
		schema.LoadCategorySleep:    b.SleepLoad,
		schema.LoadCategorySymptom:  b.SymptomLoad,
	}
}

// categoryLoads sums each category's undecayed load over a closed day
// range, optionally collecting the per-day distribution.
func (s *Server) categoryLoads(accountNumber string, from, to time.Time, cfg schema.LoadConfiguration, withDistribution bool) (map[schema.LoadCategory]float64, map[schema.LoadCategory]map[string]float64, error) {
	events, err := s.fetchEvents(accountNumber, from, to)
	if err != nil {
		return nil, nil, err
	}

	contributorsByDay := score.GroupContributorsByDay(events.contributors(), s.location)
	symptomsByDay := score.GroupSymptomsByDay(events.symptoms, s.location)

	totals := map[schema.LoadCategory]float64{}
	var distribution map[schema.LoadCategory]map[string]float64
	if withDistribution {
		distribution = map[schema.LoadCategory]map[string]float64{}
	}

	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		key := utils.DayKey(day)
		b := score.AnalyseContributions(contributorsByDay[key], symptomsByDay[key], cfg)
		for category, load := range breakdownCategories(b) {
			if load <= 0 {
				continue
			}
			totals[category] += load
			if withDistribution {
				if distribution[category] == nil {
					distribution[category] = map[string]float64{}
				}
				distribution[category][key] = load
			}
		}
	}

	return totals, distribution, nil
}

// gatherLoadReportItems builds one report item per category, comparing
// the current period's total against the previous one.
func gatherLoadReportItems(current, previous map[schema.LoadCategory]float64, distribution map[schema.LoadCategory]map[string]float64) []reportItem {
	items := make([]reportItem, 0, len(loadCategoryNames))
	for category, name := range loadCategoryNames {
		value := current[category]
		changeRate := score.ChangeRate(value, previous[category])

		v := value
		cr := changeRate
		items = append(items, reportItem{
			ID:           string(category),
			Name:         name,
			Value:        &v,
			ChangeRate:   &cr,
			Distribution: distribution[category],
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})

	return items
}

// reportItems summarizes which categories drove the load over a period,
// with change rates against the equal-length period immediately before.
func (s *Server) reportItems(c *gin.Context) {
	accountNumber := c.GetString("requester")

	from, to, ok := s.resolveRange(c)
	if !ok {
		return
	}

	cfg := requesterConfiguration(c)

	current, distribution, err := s.categoryLoads(accountNumber, from, to, cfg, true)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	days := int(to.Sub(from).Hours()/24) + 1
	previousTo := from.AddDate(0, 0, -1)
	previousFrom := previousTo.AddDate(0, 0, -(days - 1))

	previous, _, err := s.categoryLoads(accountNumber, previousFrom, previousTo, cfg, false)
	if err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report_items": gatherLoadReportItems(current, previous, distribution),
	})
}
