package model

// DayNight is the required DAY and NIGHT staffing for one date
type DayNight struct {
	Day   int
	Night int
}

// DemandTemplate supplies staffing targets by weekday type when no explicit
// per-date demand exists. Sundays always resolve to zero coverage.
type DemandTemplate struct {
	MonFriDay int
	SatDay    int
	Night     int
}

// ForDate resolves the template for a given date's weekday type
func (t DemandTemplate) ForDate(date DateKey) DayNight {
	switch {
	case date.IsSunday():
		return DayNight{}
	case date.IsSaturday():
		return DayNight{Day: t.SatDay, Night: t.Night}
	default:
		return DayNight{Day: t.MonFriDay, Night: t.Night}
	}
}

// Demand holds explicit per-date staffing targets plus an optional fallback
// template
type Demand struct {
	ByDate   map[DateKey]DayNight
	Template *DemandTemplate
}

// IsEmpty reports whether no demand information was supplied at all
func (d *Demand) IsEmpty() bool {
	return d == nil || (len(d.ByDate) == 0 && d.Template == nil)
}

// Resolve returns the staffing target for a date: explicit value first,
// then the template by weekday type. The second return is false when
// neither source covers the date.
func (d *Demand) Resolve(date DateKey) (DayNight, bool) {
	if d == nil {
		return DayNight{}, false
	}
	if dn, ok := d.ByDate[date]; ok {
		return dn, true
	}
	if d.Template != nil {
		return d.Template.ForDate(date), true
	}
	return DayNight{}, false
}

// Area hard defaults, used by the scheduler when a run is started without
// any configured demand.
var areaDefaultTemplates = map[Area]DemandTemplate{
	AreaSouth: {MonFriDay: 4, SatDay: 3, Night: 1},
	AreaNorth: {MonFriDay: 3, SatDay: 2, Night: 1},
}

// DefaultTemplate returns the hard staffing defaults for an area
func DefaultTemplate(area Area) DemandTemplate {
	if t, ok := areaDefaultTemplates[area]; ok {
		return t
	}
	return areaDefaultTemplates[AreaSouth]
}

// ResolveOrDefault resolves demand like Resolve but falls back to the
// area's hard defaults instead of reporting a miss
func (d *Demand) ResolveOrDefault(date DateKey, area Area) DayNight {
	if dn, ok := d.Resolve(date); ok {
		return dn
	}
	return DefaultTemplate(area).ForDate(date)
}
