package domain

// Lane is a known trade lane and the forms conventionally used on it.
type Lane struct {
	Key       string   `json:"key"`
	Templates []string `json:"templates"`
}

var tradeLanes = []Lane{
	{
		Key:       "Houston to Rotterdam",
		Templates: []string{"Asbatankvoy 2025", "Shellvoy 6", "BPVOY4", "ExxonMobil Voy2000", "INTERTANKVOY 76"},
	},
	{
		Key:       "Persian Gulf to Singapore",
		Templates: []string{"Asbatankvoy 2025", "Shellvoy 6", "ExxonMobil Voy2000", "INTERTANKVOY 76"},
	},
	{
		Key:       "West Africa to China",
		Templates: []string{"Asbatankvoy 2025", "Shellvoy 6", "BPVOY4", "INTERTANKVOY 76"},
	},
}

// TradeLanes returns the lane table in declaration order.
func TradeLanes() []Lane {
	out := make([]Lane, len(tradeLanes))
	for i, l := range tradeLanes {
		out[i] = Lane{Key: l.Key, Templates: append([]string(nil), l.Templates...)}
	}
	return out
}
