package sqlc

import "time"

const (
	QuerierCtxTimeout = time.Second * 10
)

const (
	AnalyticsCounterGamesCreated uint8 = iota
	AnalyticsCounterRematchCalled
)

type DbManager struct {
	Analytics *AnalyticsManager
}

func NewDbManager(queries Querier) DbManager {
	return DbManager{
		Analytics: NewAnalyticsManager(queries),
	}
}
