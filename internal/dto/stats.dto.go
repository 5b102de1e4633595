package dto

type HaircutCountDTO struct {
	HaircutID   uint   `json:"haircut_id"`
	HaircutName string `json:"haircut_name"`
	Count       int    `json:"count"`
}

type DailyEvolutionDTO struct {
	Date    string `json:"date"`
	Count   int    `json:"count"`
	Revenue int    `json:"revenue"`
}

type BarberRankingDTO struct {
	BarberID          uint   `json:"barber_id"`
	BarberName        string `json:"barber_name"`
	TotalAppointments int    `json:"total_appointments"`
	TotalRevenue      int    `json:"total_revenue"`
}

type DailyStatsDTO struct {
	TotalAppointments int               `json:"total_appointments"`
	TotalRevenue      int               `json:"total_revenue"`
	TopHaircuts       []HaircutCountDTO `json:"top_haircuts"`
}

type MonthlyStatsDTO struct {
	TotalAppointments int                 `json:"total_appointments"`
	TotalRevenue      int                 `json:"total_revenue"`
	DailyEvolution    []DailyEvolutionDTO `json:"daily_evolution"`
	BarberRanking     []BarberRankingDTO  `json:"barber_ranking"`
}
