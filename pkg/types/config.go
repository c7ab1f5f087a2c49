package types

// BoardColumns names the boards sheet columns.
type BoardColumns struct {
	// Name is the grid name column (default "Grilles").
	Name string `json:"name" yaml:"name" mapstructure:"name"`
}

// TileColumns names the tiles sheet columns. The defaults match the
// Interpretable pictogram spreadsheet.
type TileColumns struct {
	Board     string `json:"board" yaml:"board" mapstructure:"board"`
	Label     string `json:"label" yaml:"label" mapstructure:"label"`
	LoadBoard string `json:"load_board" yaml:"load_board" mapstructure:"load_board"`
	Row       string `json:"row" yaml:"row" mapstructure:"row"`
	Column    string `json:"column" yaml:"column" mapstructure:"column"`

	// Renamed is read into each outcome but never filters rows.
	Renamed string `json:"renamed" yaml:"renamed" mapstructure:"renamed"`

	// Category holds the grammatical category driving tile colours. Empty
	// means the sheet has no such column and default colours apply.
	Category string `json:"category,omitempty" yaml:"category,omitempty" mapstructure:"category"`
}

// DefaultBoardColumns returns the boards sheet headers of the source dataset.
func DefaultBoardColumns() BoardColumns {
	return BoardColumns{Name: "Grilles"}
}

// DefaultTileColumns returns the tiles sheet headers of the source dataset.
func DefaultTileColumns() TileColumns {
	return TileColumns{
		Board:     "Est présent sur la grille",
		Label:     "Label*\n(Apparaitra sous le picto dans CBoard)",
		LoadBoard: "Lors d'un clic ouvre la grille",
		Row:       "Ligne",
		Column:    "Colonne",
		Renamed:   "Fichiers png renommés dans drive",
	}
}

// OutputFormat selects the document rendering.
type OutputFormat string

const (
	OutputJSON OutputFormat = "json"
	OutputYAML OutputFormat = "yaml"
)

// BoardOwner holds the author fields stamped on every board.
type BoardOwner struct {
	Author string `json:"author" yaml:"author" mapstructure:"author"`
	Email  string `json:"email" yaml:"email" mapstructure:"email"`
}

// DefaultBoardOwner returns the owner used by the Interpretable dataset.
func DefaultBoardOwner() BoardOwner {
	return BoardOwner{Author: "Interpretable", Email: "interpretable@erasme.io"}
}

// MatchConfig tunes the fuzzy image matcher.
type MatchConfig struct {
	// Limit caps the number of ranked candidates (default 100).
	Limit int `json:"limit" yaml:"limit" mapstructure:"limit"`

	// MinScore discards candidates scoring at or below it (default 0).
	MinScore float64 `json:"min_score" yaml:"min_score" mapstructure:"min_score"`
}

// BuildConfig holds settings for the build stage.
type BuildConfig struct {
	// BoardsSheet is the path to the boards sheet (.csv or .xlsx).
	BoardsSheet string `json:"boards_sheet" yaml:"boards_sheet" mapstructure:"boards_sheet"`

	// TilesSheet is the path to the tiles sheet (.csv or .xlsx).
	TilesSheet string `json:"tiles_sheet" yaml:"tiles_sheet" mapstructure:"tiles_sheet"`

	// SheetName selects the worksheet for .xlsx inputs. Empty means the
	// first sheet.
	SheetName string `json:"sheet_name,omitempty" yaml:"sheet_name,omitempty" mapstructure:"sheet_name"`

	// ImagesDir is the directory whose filenames form the match corpus.
	ImagesDir string `json:"images_dir" yaml:"images_dir" mapstructure:"images_dir"`

	// ExportDir is the export tree root (contains src/api/, public/).
	ExportDir string `json:"export_dir" yaml:"export_dir" mapstructure:"export_dir"`

	// SymbolsDir is the public path prefix of copied images
	// (default "symbols/interpretable/").
	SymbolsDir string `json:"symbols_dir" yaml:"symbols_dir" mapstructure:"symbols_dir"`

	// ColorsFile overrides the embedded colour table when set.
	ColorsFile string `json:"colors_file,omitempty" yaml:"colors_file,omitempty" mapstructure:"colors_file"`

	// Format selects the document rendering: json or yaml.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	BoardColumns BoardColumns `json:"board_columns" yaml:"board_columns" mapstructure:"board_columns"`
	TileColumns  TileColumns  `json:"tile_columns" yaml:"tile_columns" mapstructure:"tile_columns"`
	Owner        BoardOwner   `json:"owner" yaml:"owner" mapstructure:"owner"`
	Match        MatchConfig  `json:"match" yaml:"match" mapstructure:"match"`
}

// DefaultBuildConfig returns a BuildConfig laid out like the Interpretable
// project: sheets and images/ at the root, output under export/.
func DefaultBuildConfig() BuildConfig {
	return BuildConfig{
		BoardsSheet:  "Interpretable - Donnees pictogrammes - Grilles.csv",
		TilesSheet:   "Interpretable - Donnees pictogrammes - Pictos.csv",
		ImagesDir:    "images",
		ExportDir:    "export",
		SymbolsDir:   "symbols/interpretable/",
		Format:       OutputJSON,
		BoardColumns: DefaultBoardColumns(),
		TileColumns:  DefaultTileColumns(),
		Owner:        DefaultBoardOwner(),
		Match:        MatchConfig{Limit: 100},
	}
}

// IndexConfig holds settings for the board index.
type IndexConfig struct {
	// IndexDir holds the SQLite database (default "index").
	IndexDir string `json:"index_dir" yaml:"index_dir" mapstructure:"index_dir"`

	// MaxResults is the default maximum number of lookup results (default 20).
	MaxResults int `json:"max_results" yaml:"max_results" mapstructure:"max_results"`
}
