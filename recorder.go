package main

import (
	"log"
	"math"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// 計算結果のCSVファイルの1行
type ResultRow struct {
	Step                  int     `csv:"step"`                 // ステップ番号
	ProfileAngle          float64 `csv:"profile_angle"`        // プロファイル角, degree
	FShadeDirect          float64 `csv:"f_shade_direct"`       // 直達日射に対する透過率, -
	FShadeSky             float64 `csv:"f_shade_sky"`          // 天空日射に対する透過率, -
	FShadeReflected       float64 `csv:"f_shade_reflected"`    // 地面反射日射に対する透過率, -
	IrradianceDirect      float64 `csv:"irradiance_direct"`    // 影を考慮した傾斜面日射量の直達成分, W/m2
	IrradianceSky         float64 `csv:"irradiance_sky"`       // 影を考慮した傾斜面日射量の天空成分, W/m2
	IrradianceReflect     float64 `csv:"irradiance_reflected"` // 影を考慮した傾斜面日射量の地面反射成分, W/m2
	IrradianceShadedTotal float64 `csv:"irradiance_total"`     // 影を考慮した傾斜面日射量の合計, W/m2
}

// 計算結果を記録するクラス
type Recorder struct {
	_rows []*ResultRow
}

/*
Args:
	n_step: 記録するステップ数
*/
func NewRecorder(n_step int) *Recorder {
	return &Recorder{
		_rows: make([]*ResultRow, 0, n_step),
	}
}

/*
ステップ n の計算結果を記録する。

Args:
	n: ステップ番号
	res: ShadingResult クラス
*/
func (self *Recorder) recording(n int, res *ShadingResult) {

	const to_deg = 180.0 / math.Pi

	self._rows = append(self._rows, &ResultRow{
		Step:                  n,
		ProfileAngle:          res.phi_p_j_n * to_deg,
		FShadeDirect:          res.f_shd_dn_j_n,
		FShadeSky:             res.f_shd_sky_j,
		FShadeReflected:       res.f_shd_ref_j,
		IrradianceDirect:      res.i_srf_dn_j_n,
		IrradianceSky:         res.i_srf_sky_j_n,
		IrradianceReflect:     res.i_srf_ref_j_n,
		IrradianceShadedTotal: res.i_srf_j_n,
	})
}

/*
記録した計算結果をCSVファイルとして出力する。

Args:
	output_data_dir: 出力フォルダへのパス
*/
func (self *Recorder) export_csv(output_data_dir string) {

	result_path := filepath.Join(output_data_dir, "result_shading.csv")
	log.Printf("Save calculation results data to `%s`", result_path)

	file, err := os.Create(result_path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if err := gocsv.MarshalFile(&self._rows, file); err != nil {
		log.Fatal(err)
	}
}
