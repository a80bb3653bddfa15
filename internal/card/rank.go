package card

// Rank is the value of a card, e.g. "A"/"Ace". Ranks are compared by identity.
type Rank struct {
	short string
	long  string
}

// NewRank creates a rank with the given short and long names
func NewRank(short, long string) *Rank {
	return &Rank{short: short, long: long}
}

func (r *Rank) ShortName() string { return r.short }

func (r *Rank) LongName() string { return r.long }

func (r *Rank) String() string { return r.short }
