package domains

type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
)

const (
	DefaultMaxWidth = 600
	DefaultPadding  = 32
)

// LayoutSettings positions the inner content table of a generated document.
// Values are used as given; an alignment outside left/center/right gets no
// margin rule at all.
type LayoutSettings struct {
	MaxWidth  int       `json:"maxWidth" yaml:"max_width" env-default:"600"`
	Alignment Alignment `json:"alignment" yaml:"alignment" env-default:"center"`
	Padding   int       `json:"padding" yaml:"padding" env-default:"32"`
}

func DefaultLayout() LayoutSettings {
	return LayoutSettings{
		MaxWidth:  DefaultMaxWidth,
		Alignment: AlignCenter,
		Padding:   DefaultPadding,
	}
}
