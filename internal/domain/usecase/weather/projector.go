package weather

import (
	"math"
	"time"

	"go-weather/internal/domain/entity"
	"go-weather/pkg/msg"
)

const (
	timestampLayout = "2006-01-02T15:04"
	dateLayout      = "2006-01-02"
	hourLabelLayout = "15:04"
	maxDailyPoints  = 7
)

var weekdayKeys = [7]string{"sun", "mon", "tue", "wed", "thu", "fri", "sat"}

// Labels are the display strings the projector writes into the series.
// Weekdays is indexed by time.Weekday.
type Labels struct {
	Now      string
	Today    string
	Weekdays [7]string
}

// MessageLabels reads the labels from the message catalog
func MessageLabels() Labels {
	labels := Labels{
		Now:   msg.GetMessage("forecast.label.now"),
		Today: msg.GetMessage("forecast.label.today"),
	}
	for i, key := range weekdayKeys {
		labels.Weekdays[i] = msg.GetMessage("forecast.weekday." + key)
	}
	return labels
}

// Projector turns a ForecastDocument into the current, hourly and daily display series.
// It holds no mutable state and is safe for concurrent use.
type Projector struct {
	labels Labels
}

func NewProjector(labels Labels) *Projector {
	return &Projector{labels: labels}
}

// Project builds the forecast as seen at now. Wall clock values are read in the document's
// timezone. Malformed timestamps are skipped, never reported.
func (p *Projector) Project(doc *entity.ForecastDocument, now time.Time) entity.Forecast {
	location := doc.Location
	if location == nil {
		location = time.UTC
	}
	now = now.In(location)

	var sunrise, sunset *time.Time
	if len(doc.Daily) > 0 {
		sunrise = parseTimestamp(doc.Daily[0].Sunrise, location)
		sunset = parseTimestamp(doc.Daily[0].Sunset, location)
	}

	current := p.projectCurrent(doc, now, sunrise, sunset)

	return entity.Forecast{
		Timezone: doc.Timezone,
		Current:  current,
		Hourly:   p.projectHourly(doc.Hourly, current, now, sunrise, sunset),
		Daily:    p.projectDaily(doc.Daily, location),
	}
}

func (p *Projector) projectCurrent(doc *entity.ForecastDocument, now time.Time, sunrise, sunset *time.Time) entity.CurrentConditions {
	current := entity.CurrentConditions{
		Temperature: round(doc.Current.Temperature),
		Condition:   ConditionLabel(doc.Current.WeatherCode),
		Icon:        IconFor(doc.Current.WeatherCode, IsNight(now, sunrise, sunset)),
	}

	if len(doc.Daily) > 0 {
		current.High = round(doc.Daily[0].MaxTemperature)
		current.Low = round(doc.Daily[0].MinTemperature)
	}

	return current
}

// projectHourly keeps the hours after now up to 23:59:59 of the same day, behind a "Now" point
func (p *Projector) projectHourly(records []entity.HourlyRecord, current entity.CurrentConditions, now time.Time, sunrise, sunset *time.Time) []entity.HourlyPoint {
	endOfDay := time.Date(now.Year(), now.Month(), now.Day(), 23, 59, 59, 0, now.Location())

	points := []entity.HourlyPoint{{
		Label:       p.labels.Now,
		Icon:        current.Icon,
		Temperature: current.Temperature,
	}}

	for _, record := range records {
		instant := parseTimestamp(record.Time, now.Location())
		if instant == nil || !instant.After(now) || instant.After(endOfDay) {
			continue
		}

		points = append(points, entity.HourlyPoint{
			Label:       instant.Format(hourLabelLayout),
			Icon:        IconFor(record.WeatherCode, IsNight(*instant, sunrise, sunset)),
			Temperature: round(record.Temperature),
		})
	}

	return points
}

// projectDaily labels day 0 "Today" whatever its date. Daily icons are always day icons.
func (p *Projector) projectDaily(records []entity.DailyRecord, location *time.Location) []entity.DailyPoint {
	if len(records) > maxDailyPoints {
		records = records[:maxDailyPoints]
	}

	points := make([]entity.DailyPoint, 0, len(records))
	for i, record := range records {
		label := p.labels.Today
		if i > 0 {
			date, err := time.ParseInLocation(dateLayout, record.Date, location)
			if err != nil {
				continue
			}
			label = p.labels.Weekdays[date.Weekday()]
		}

		points = append(points, entity.DailyPoint{
			Day:  label,
			Icon: IconFor(record.WeatherCode, false),
			High: round(record.MaxTemperature),
			Low:  round(record.MinTemperature),
		})
	}

	return points
}

// parseTimestamp reads a local "2006-01-02T15:04" timestamp, falling back to RFC 3339
func parseTimestamp(value string, location *time.Location) *time.Time {
	if value == "" {
		return nil
	}
	if instant, err := time.ParseInLocation(timestampLayout, value, location); err == nil {
		return &instant
	}
	if instant, err := time.Parse(time.RFC3339, value); err == nil {
		instant = instant.In(location)
		return &instant
	}
	return nil
}

// round rounds half away from zero
func round(value float64) int {
	return int(math.Round(value))
}
