package agent

import (
	"errors"
	"os"
	"strings"

	maa "github.com/MaaXYZ/maa-framework-go/v3"
	"github.com/bytedance/sonic"
	"github.com/forny/tilemosaic/config"
	"github.com/forny/tilemosaic/mosaic"
	"github.com/forny/tilemosaic/render"
	"github.com/rs/zerolog/log"
)

// actionParams is the custom_action_param shared by the mosaic actions.
type actionParams struct {
	TilesPath  string `json:"tiles_path"`
	OutputPath string `json:"output_path"`
	Format     string `json:"format"`
}

// Report summarises one solved mosaic.
type Report struct {
	Tiles          int    `json:"tiles"`
	GridWidth      int    `json:"grid_width"`
	CornerProduct  int64  `json:"corner_product"`
	Roughness      int    `json:"roughness"`
	Filled         int    `json:"filled"`
	Monsters       int    `json:"monsters"`
	MonsterFlop    string `json:"monster_flop,omitempty"`
	AdjacencyCheck bool   `json:"adjacency_check"`
}

// Result bundles everything one run produces.
type Result struct {
	Map    *mosaic.TileMap
	Scan   *mosaic.ScanResult
	Report Report
}

func parseParams(raw string) (*actionParams, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, errors.New("custom_action_param is empty")
	}
	var params actionParams
	if err := sonic.UnmarshalString(raw, &params); err != nil {
		return nil, err
	}
	params.TilesPath = strings.TrimSpace(params.TilesPath)
	if params.TilesPath == "" {
		return nil, errors.New("tiles_path is required")
	}
	return &params, nil
}

// SolveFile loads, solves and scans the tile file at path.
// The corner product is cross-checked against the adjacency graph; a mismatch is only logged.
func SolveFile(path string) (*Result, error) {
	ts, err := mosaic.LoadTiles(path)
	if err != nil {
		return nil, err
	}
	tm, err := mosaic.Solve(ts)
	if err != nil {
		return nil, err
	}
	product, err := tm.CornerIDProduct()
	if err != nil {
		return nil, err
	}
	scan, err := mosaic.Scan(tm, mosaic.SeaMonster)
	if err != nil {
		return nil, err
	}

	adjacencyOK := false
	if adj, err := mosaic.AdjacencyCornerProduct(ts); err != nil {
		log.Warn().Err(err).Msg("Adjacency corner check unavailable")
	} else if adj != product {
		log.Warn().Int64("solver", product).Int64("adjacency", adj).Msg("Corner products disagree")
	} else {
		adjacencyOK = true
	}

	return &Result{
		Map:  tm,
		Scan: scan,
		Report: Report{
			Tiles:          ts.Len(),
			GridWidth:      tm.GridWidth(),
			CornerProduct:  product,
			Roughness:      scan.Roughness,
			Filled:         scan.Filled,
			Monsters:       scan.Matches,
			MonsterFlop:    monsterFlop(scan),
			AdjacencyCheck: adjacencyOK,
		},
	}, nil
}

// monsterFlop names the orientation monsters were found under, or "" when there are none.
func monsterFlop(scan *mosaic.ScanResult) string {
	if scan.Matches == 0 {
		return ""
	}
	return scan.BestFlop().String()
}

// SolveAction solves the tile file named in custom_action_param and logs the results.
type SolveAction struct{}

// Run 实现 maa.CustomActionRunner。参数解析或求解失败时返回 false。
func (a *SolveAction) Run(ctx *maa.Context, arg *maa.CustomActionArg) bool {
	params, err := parseParams(arg.CustomActionParam)
	if err != nil {
		log.Error().
			Err(err).
			Str("action", arg.CustomActionName).
			Str("raw_param", arg.CustomActionParam).
			Msg("[MosaicSolve] failed to parse custom_action_param")
		return false
	}

	res, err := SolveFile(params.TilesPath)
	if err != nil {
		log.Error().Err(err).Str("tiles_path", params.TilesPath).Msg("[MosaicSolve] failed to solve mosaic")
		return false
	}

	log.Info().
		Interface("report", res.Report).
		Msg("[MosaicSolve] mosaic solved")
	return true
}

// RenderAction solves the tile file and writes the composed image to output_path.
type RenderAction struct{}

func (a *RenderAction) Run(ctx *maa.Context, arg *maa.CustomActionArg) bool {
	params, err := parseParams(arg.CustomActionParam)
	if err != nil {
		log.Error().Err(err).Str("raw_param", arg.CustomActionParam).Msg("[MosaicRender] failed to parse custom_action_param")
		return false
	}
	if params.OutputPath == "" {
		log.Error().Str("raw_param", arg.CustomActionParam).Msg("[MosaicRender] output_path is required")
		return false
	}

	res, err := SolveFile(params.TilesPath)
	if err != nil {
		log.Error().Err(err).Str("tiles_path", params.TilesPath).Msg("[MosaicRender] failed to solve mosaic")
		return false
	}

	if err := WriteImage(res, params.OutputPath, params.Format); err != nil {
		log.Error().Err(err).Str("output_path", params.OutputPath).Msg("[MosaicRender] failed to write image")
		return false
	}

	log.Info().
		Str("output_path", params.OutputPath).
		Int("roughness", res.Report.Roughness).
		Msg("[MosaicRender] image written")
	return true
}

// WriteImage renders the mosaic at the orientation where monsters were found
// and writes it to path using the current render config.
func WriteImage(res *Result, path, format string) error {
	rc := config.Current().Render
	pal, err := render.PaletteFrom(rc)
	if err != nil {
		return err
	}
	if format == "" {
		format = render.FormatFromPath(path)
	}
	if err := render.ValidFormat(format); err != nil {
		return err
	}

	img := render.Scale(render.Image(res.Map, res.Scan, res.Scan.BestFlop(), pal), rc.Scale)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render.Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
