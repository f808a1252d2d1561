package dto

// GeneralStats aggregates occurrence counts for a municipality.
type GeneralStats struct {
	Total               int `json:"total"`
	Recebidas           int `json:"recebidas"`
	EmAnalise           int `json:"em_analise"`
	EmAtendimento       int `json:"em_atendimento"`
	Resolvidas          int `json:"resolvidas"`
	Rejeitadas          int `json:"rejeitadas"`
	PercentualResolucao int `json:"percentual_resolucao"`
}

// DailyStat is one calendar-day bucket of the rolling window.
type DailyStat struct {
	Date       string `json:"date"`
	Total      int    `json:"total"`
	Resolvidas int    `json:"resolvidas"`
}

// DashboardStatsResponse is the payload of the statistics endpoint.
type DashboardStatsResponse struct {
	EstatisticasGerais  GeneralStats `json:"estatisticas_gerais"`
	EstatisticasDiarias []DailyStat  `json:"estatisticas_diarias"`
	PeriodoDias         int          `json:"periodo_dias"`
}
