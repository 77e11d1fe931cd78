package profile

// Config bounds and weights the interaction channels. The quotas are a
// deliberate relative-importance weighting; they need not sum to 1.0.
type Config struct {
	NUpvote      int
	NOpen        int
	NBuy         int
	NShowTime    int
	NStyleFilter int

	QuotaUpvote      float64
	QuotaOpen        float64
	QuotaBuy         float64
	QuotaShowTime    float64
	QuotaStyleFilter float64
}

const (
	defaultNUpvote      = 10
	defaultNOpen        = 10
	defaultNBuy         = 10
	defaultNShowTime    = 100
	defaultNStyleFilter = 10

	defaultQuotaUpvote      = 0.2
	defaultQuotaOpen        = 0.15
	defaultQuotaBuy         = 0.3
	defaultQuotaShowTime    = 0.05
	defaultQuotaStyleFilter = 0.3
)

func DefaultConfig() Config {
	return Config{
		NUpvote:      defaultNUpvote,
		NOpen:        defaultNOpen,
		NBuy:         defaultNBuy,
		NShowTime:    defaultNShowTime,
		NStyleFilter: defaultNStyleFilter,

		QuotaUpvote:      defaultQuotaUpvote,
		QuotaOpen:        defaultQuotaOpen,
		QuotaBuy:         defaultQuotaBuy,
		QuotaShowTime:    defaultQuotaShowTime,
		QuotaStyleFilter: defaultQuotaStyleFilter,
	}
}
