package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 無限長多段配置式アレイの設定値（セル単位モデルなし）
func new_unlimited_rows_settings() Settings {
	return Settings{
		"ArrayType":     "Unlimited Rows",
		"PlaneTilt":     30.0,
		"Azimuth":       0.0,
		"Pitch":         4.0,
		"CollBandWidth": 2.0,
		"ShadingLimit":  60.0,
		"RowsBlock":     10.0,
	}
}

func TestArrayTypeFromString(t *testing.T) {
	assert.Equal(t, ArrayTypeUnlimitedRows, ArrayTypeFromString("Unlimited Rows"))
	assert.Equal(t, ArrayTypeFixedTilted, ArrayTypeFromString("Fixed Tilted"))

	// 未定義の文字列は固定傾斜式として扱う。
	assert.Equal(t, ArrayTypeFixedTilted, ArrayTypeFromString("Tracking"))
	assert.Equal(t, ArrayTypeFixedTilted, ArrayTypeFromString(""))
}

func TestNewArrayShading_ArrayTypeMissingDefaultsToFixedTilted(t *testing.T) {
	ss := Settings{
		"PlaneTilt": 30.0,
		"Azimuth":   0.0,
	}

	shd := NewArrayShading(ss)

	require.IsType(t, &ShadingFixedTilted{}, shd)
}

func TestNewArrayShading_RequiredSettingMissing(t *testing.T) {
	// 固定傾斜式で傾斜角が未定義
	assert.Panics(t, func() {
		NewArrayShading(Settings{"ArrayType": "Fixed Tilted", "Azimuth": 0.0})
	})

	// 無限長多段配置式でピッチが未定義
	ss := new_unlimited_rows_settings()
	delete(ss, "Pitch")
	assert.Panics(t, func() {
		NewArrayShading(ss)
	})
}

func TestNewArrayShading_MalformedSetting(t *testing.T) {
	ss := new_unlimited_rows_settings()
	ss["PlaneTilt"] = "thirty"
	assert.Panics(t, func() {
		NewArrayShading(ss)
	})

	ss2 := new_unlimited_rows_settings()
	ss2["RowsBlock"] = 0.0
	assert.Panics(t, func() {
		NewArrayShading(ss2)
	})
}

func TestFixedTilted_DirectFactorIsAlwaysOne(t *testing.T) {
	shd := NewShadingFixedTilted(30.0*math.Pi/180.0, 0.0)

	cases := [][2]float64{
		{30.0 * math.Pi / 180.0, 0.0},
		{60.0 * math.Pi / 180.0, math.Pi / 4.0},
		{100.0 * math.Pi / 180.0, 0.0}, // 地平線下
		{45.0 * math.Pi / 180.0, math.Pi}, // 背面
	}

	for _, c := range cases {
		f, phi_p := shd.get_f_shd_dn_j(c[0], c[1])
		assert.Equal(t, 1.0, f)
		assert.Equal(t, 0.0, phi_p)
	}
}

func TestFixedTilted_ConstantFactors(t *testing.T) {
	beta := 30.0 * math.Pi / 180.0
	shd := NewShadingFixedTilted(beta, 0.0)

	assert.InDelta(t, (1.0+math.Cos(beta))/2.0, shd.get_f_shd_sky_j(), 1e-15)
	assert.InDelta(t, (1.0-math.Cos(beta))/2.0, shd.get_f_shd_ref_j(), 1e-15)
}

// 正弦定理による影長さの計算の検証。
// 傾斜角30°・影限界角60°・奥行1mのアレイに対し、プロファイル角30°
// （太陽天頂角60°・太陽方位角0°・アレイ方位角0°）のとき、
// AC = sin(30°)/sin(60°)、∠CAA' = 90°、∠CA'A = 60°、∠ACA' = 30° となり、
// 影のかかる長さは AC・sin(30°)/sin(60°) = 1/3 m となる。
func TestShadedLength_GoldenTriangle(t *testing.T) {
	const to_rad = math.Pi / 180.0

	l_shd, phi_p := _get_l_shd_j_n(
		60.0*to_rad, // theta_z_n
		0.0,         // a_sun_n
		0.0,         // alpha_w_j
		30.0*to_rad, // beta_w_j
		1.0,         // l_w_j
		60.0*to_rad, // phi_lim_j
	)

	assert.InDelta(t, 30.0*to_rad, phi_p, 1e-12)
	assert.InDelta(t, 1.0/3.0, l_shd, 1e-12)
}

func TestShadedLength_NoShadingConditions(t *testing.T) {
	const to_rad = math.Pi / 180.0

	// 太陽が地平線下にある場合
	l_shd, phi_p := _get_l_shd_j_n(100.0*to_rad, 0.0, 0.0, 30.0*to_rad, 1.0, 60.0*to_rad)
	assert.Equal(t, 0.0, l_shd)
	assert.Equal(t, 0.0, phi_p)

	// 太陽がアレイ面の背面にある場合
	l_shd, phi_p = _get_l_shd_j_n(45.0*to_rad, 120.0*to_rad, 0.0, 30.0*to_rad, 1.0, 60.0*to_rad)
	assert.Equal(t, 0.0, l_shd)
	assert.Equal(t, 0.0, phi_p)

	// プロファイル角が影限界角以上の場合（太陽天頂角20° → プロファイル角70°）
	l_shd, phi_p = _get_l_shd_j_n(20.0*to_rad, 0.0, 0.0, 30.0*to_rad, 1.0, 60.0*to_rad)
	assert.Equal(t, 0.0, l_shd)
	assert.InDelta(t, 70.0*to_rad, phi_p, 1e-12)
}

// プロファイル角が 0 に近づく（太陽が低くなる）ほど影のかかる長さは単調に増加し、
// プロファイル角 0 でアレイの奥行全体に達する。
func TestShadedLength_MonotonicAsProfileAngleDecreases(t *testing.T) {
	const to_rad = math.Pi / 180.0

	prev := 0.0
	for theta_z_deg := 31.0; theta_z_deg < 90.0; theta_z_deg += 1.0 {
		l_shd, _ := _get_l_shd_j_n(theta_z_deg*to_rad, 0.0, 0.0, 30.0*to_rad, 1.0, 60.0*to_rad)
		assert.GreaterOrEqual(t, l_shd, prev)
		assert.LessOrEqual(t, l_shd, 1.0+1e-12)
		prev = l_shd
	}

	// プロファイル角 0 の極限で影はアレイの奥行全体にかかる。
	l_shd, _ := _get_l_shd_j_n(math.Pi/2.0, 0.0, 0.0, 30.0*to_rad, 1.0, 60.0*to_rad)
	assert.InDelta(t, 1.0, l_shd, 1e-9)
}

func TestUnlimitedRows_EndToEnd(t *testing.T) {
	const to_rad = math.Pi / 180.0

	shd := NewArrayShading(new_unlimited_rows_settings())
	ur, ok := shd.(*ShadingUnlimitedRows)
	require.True(t, ok)

	// 段数補正係数 (10-1)/10
	assert.InDelta(t, 0.9, ur._r_blk_j, 1e-15)

	// 太陽天頂角60°・方位角0°のとき影面積率は 1/3 となり、
	// 直達日射に対する透過率は 1 - (1/3)・0.9 = 0.7 となる。
	f_dn, phi_p := shd.get_f_shd_dn_j(60.0*to_rad, 0.0)
	assert.InDelta(t, 30.0*to_rad, phi_p, 1e-12)
	assert.InDelta(t, 0.7, f_dn, 1e-12)

	// 天空日射に対する透過率 0.9・(1+cos60°)/2 = 0.675
	assert.InDelta(t, 0.675, shd.get_f_shd_sky_j(), 1e-12)

	// 地面反射日射に対する透過率 1 - 0.9 = 0.1
	assert.InDelta(t, 0.1, shd.get_f_shd_ref_j(), 1e-12)
}

// 同一の設定から構築したアレイの定数の透過率はビット単位で一致する。
func TestConstantFactors_Reproducible(t *testing.T) {
	shd1 := NewArrayShading(new_unlimited_rows_settings())
	shd2 := NewArrayShading(new_unlimited_rows_settings())

	assert.Equal(t, shd1.get_f_shd_sky_j(), shd2.get_f_shd_sky_j())
	assert.Equal(t, shd1.get_f_shd_ref_j(), shd2.get_f_shd_ref_j())

	// 透過率の定数は評価を繰り返しても変化しない。
	f_sky := shd1.get_f_shd_sky_j()
	f_ref := shd1.get_f_shd_ref_j()
	for i := 0; i < 100; i++ {
		theta_z := float64(i) * math.Pi / 100.0
		shd1.get_f_shd_dn_j(theta_z, 0.0)
		assert.Equal(t, f_sky, shd1.get_f_shd_sky_j())
		assert.Equal(t, f_ref, shd1.get_f_shd_ref_j())
	}
}

// セル単位の段階影モデルの設定値
func new_cell_settings() Settings {
	ss := new_unlimited_rows_settings()
	ss["UseCellVal"] = true
	ss["CellSize"] = 10.0 // cm
	ss["StrInWid"] = 4.0
	return ss
}

func TestNewArrayShading_CellModel(t *testing.T) {
	shd := NewArrayShading(new_cell_settings())
	cell, ok := shd.(*ShadingUnlimitedRowsCell)
	require.True(t, ok)

	// 奥行2m・セル10cm・ストリング数4 → 境界は [0, 5, 10, 15, 20] セル
	assert.InDeltaSlice(t, []float64{0.0, 5.0, 10.0, 15.0, 20.0}, cell._cell_bnd_j, 1e-12)
	assert.InDeltaSlice(t, []float64{0.0, 0.25, 0.5, 0.75, 1.0}, cell._f_step_j, 1e-12)

	// セル単位モデルでは段数補正を用いないため、地面反射日射に対する透過率は 0 となる。
	assert.Equal(t, 0.0, shd.get_f_shd_ref_j())

	// 天空日射に対する透過率は段数補正なしの (1+cos60°)/2 = 0.75
	assert.InDelta(t, 0.75, shd.get_f_shd_sky_j(), 1e-12)
}

func TestCellModel_StepFunction(t *testing.T) {
	shd := NewArrayShading(new_cell_settings())
	cell := shd.(*ShadingUnlimitedRowsCell)

	// ストリング境界ちょうどでは境界の段階値に一致する（連続性）。
	assert.InDelta(t, 0.25, cell._get_f_sf_cell_j_n(5.0), 1e-12)
	assert.InDelta(t, 0.5, cell._get_f_sf_cell_j_n(10.0), 1e-12)
	assert.InDelta(t, 0.75, cell._get_f_sf_cell_j_n(15.0), 1e-12)
	assert.InDelta(t, 1.0, cell._get_f_sf_cell_j_n(20.0), 1e-12)

	// 区間の途中では、区間下端の段階値に上端の段階値を勾配とした直線を加えた値を
	// 上端の段階値で頭打ちした値となる。
	assert.InDelta(t, 0.3, cell._get_f_sf_cell_j_n(5.1), 1e-12)  // 0.25 + 0.5*0.1
	assert.InDelta(t, 0.5, cell._get_f_sf_cell_j_n(7.5), 1e-12)  // 頭打ち
	assert.InDelta(t, 0.53, cell._get_f_sf_cell_j_n(10.04), 1e-12) // 0.5 + 0.75*0.04

	// 最終境界を超える場合は初期値 1 を保持する。
	assert.Equal(t, 1.0, cell._get_f_sf_cell_j_n(25.0))
}

func TestCellModel_DirectFactor(t *testing.T) {
	const to_rad = math.Pi / 180.0

	shd := NewArrayShading(new_cell_settings())

	// 太陽天頂角60° → 影のかかる長さ 2/3 m → 6.667セル → 区間 (5, 10] →
	// 影面積率 min(0.25 + 0.5・1.667, 0.5) = 0.5 → 透過率 0.5
	f_dn, phi_p := shd.get_f_shd_dn_j(60.0*to_rad, 0.0)
	assert.InDelta(t, 30.0*to_rad, phi_p, 1e-12)
	assert.InDelta(t, 0.5, f_dn, 1e-12)

	// 影が生じない場合は透過率 1
	f_dn, _ = shd.get_f_shd_dn_j(20.0*to_rad, 0.0)
	assert.Equal(t, 1.0, f_dn)

	// 太陽が地平線下にある場合も透過率 1（直達日射そのものがゼロとなる）
	f_dn, phi_p = shd.get_f_shd_dn_j(100.0*to_rad, 0.0)
	assert.Equal(t, 1.0, f_dn)
	assert.Equal(t, 0.0, phi_p)
}

func TestCalcShadedIrradiance(t *testing.T) {
	const to_rad = math.Pi / 180.0

	shd := NewArrayShading(new_unlimited_rows_settings())

	res := calc_shaded_irradiance_j_n(shd, 60.0*to_rad, 0.0, 100.0, 50.0, 10.0)

	assert.InDelta(t, 0.7, res.f_shd_dn_j_n, 1e-12)
	assert.InDelta(t, 70.0, res.i_srf_dn_j_n, 1e-9)
	assert.InDelta(t, 33.75, res.i_srf_sky_j_n, 1e-9)
	assert.InDelta(t, 1.0, res.i_srf_ref_j_n, 1e-9)

	// 合計は各成分の和に一致する。
	assert.Equal(t, res.i_srf_dn_j_n+res.i_srf_sky_j_n+res.i_srf_ref_j_n, res.i_srf_j_n)
}

func TestCalcShadedIrradianceSeries(t *testing.T) {
	const to_rad = math.Pi / 180.0

	shd := NewArrayShading(new_unlimited_rows_settings())

	theta_z_ns := []float64{60.0 * to_rad, 20.0 * to_rad, 100.0 * to_rad}
	a_sun_ns := []float64{0.0, 0.0, 0.0}
	i_dn_ns := []float64{100.0, 200.0, 0.0}
	i_sky_ns := []float64{50.0, 80.0, 0.0}
	i_ref_ns := []float64{10.0, 20.0, 0.0}

	results := calc_shaded_irradiance_j_ns(shd, theta_z_ns, a_sun_ns, i_dn_ns, i_sky_ns, i_ref_ns)
	require.Len(t, results, 3)

	// ステップごとの計算と一致する。
	for i := range results {
		expected := calc_shaded_irradiance_j_n(shd, theta_z_ns[i], a_sun_ns[i], i_dn_ns[i], i_sky_ns[i], i_ref_ns[i])
		assert.Equal(t, expected.f_shd_dn_j_n, results[i].f_shd_dn_j_n)
		assert.InDelta(t, expected.i_srf_j_n, results[i].i_srf_j_n, 1e-9)
	}

	// 影が生じない太陽位置では透過率 1
	assert.Equal(t, 1.0, results[1].f_shd_dn_j_n)
}
