package stats

type DailyStat struct {
	Date    string `json:"date"`
	Hours   int    `json:"hours"`
	Minutes int    `json:"minutes"`
	Wage    int    `json:"wage"`
}

type StatsResponse struct {
	TotalDays    int         `json:"total_days"`
	TotalHours   int         `json:"total_hours"`
	TotalMinutes int         `json:"total_minutes"`
	TotalWage    int         `json:"total_wage"`
	Daily        []DailyStat `json:"daily"`
}
