package main

import (
	"fmt"
	"log"
	"math"
)

// アレイの形式
type ArrayType string

// アレイの形式
const (
	ArrayTypeFixedTilted   ArrayType = "Fixed Tilted"   // 固定傾斜式
	ArrayTypeUnlimitedRows ArrayType = "Unlimited Rows" // 無限長多段配置式
)

/*
文字列からアレイの形式を取得する。

Args:
	str: アレイの形式を表す文字列

Returns:
	ArrayType 列挙体

Notes:
	未定義の文字列が指定された場合はエラーとせず、固定傾斜式として扱う。
*/
func ArrayTypeFromString(str string) ArrayType {
	switch str {
	case "Unlimited Rows":
		return ArrayTypeUnlimitedRows
	case "Fixed Tilted":
		return ArrayTypeFixedTilted
	default:
		log.Printf("アレイの形式 `%s` は未定義のため固定傾斜式として扱います。", str)
		return ArrayTypeFixedTilted
	}
}

// アレイ間の近接影計算に関するインタフェイス
type ArrayShading interface {
	/*
		直達日射に対する影のかかり率（透過率）とプロファイル角を計算する。

		Args:
			theta_z_n: ステップ n における太陽天頂角, rad
			a_sun_n: ステップ n における太陽方位角, rad

		Returns:
			タプル
				(1) ステップ n における直達日射の透過率（1 = 影なし）, -
				(2) ステップ n におけるプロファイル角, rad
	*/
	get_f_shd_dn_j(theta_z_n float64, a_sun_n float64) (float64, float64)

	/*
		天空日射に対する透過率を取得する。

		Returns:
			天空日射に対する透過率, -

		Notes:
			アレイの構築時に一度だけ計算された定数であり、太陽位置に依存しない。
	*/
	get_f_shd_sky_j() float64

	/*
		地面反射日射に対する透過率を取得する。

		Returns:
			地面反射日射に対する透過率, -

		Notes:
			アレイの構築時に一度だけ計算された定数であり、太陽位置に依存しない。
	*/
	get_f_shd_ref_j() float64

	// アレイ面の傾斜角を取得する。, rad
	get_beta_w_j() float64

	// アレイ面の方位角を取得する。, rad
	get_alpha_w_j() float64
}

/*
設定ストアの "ArrayType" 等の設定値を読み込み、アレイの近接影モデルを構築する。

Args:
	ss: 設定ストア

Returns:
	ArrayShading クラス

Notes:
	天空日射・地面反射日射に対する透過率はここで一度だけ計算し、
	以後は定数として参照する。
*/
func NewArrayShading(ss SettingStore) ArrayShading {

	array_type := ArrayTypeFromString(get_string_default(ss, "ArrayType", string(ArrayTypeFixedTilted)))

	const to_rad = math.Pi / 180.0

	// アレイ面の傾斜角, rad
	beta_w_j := get_float(ss, "PlaneTilt") * to_rad

	// アレイ面の方位角, rad
	alpha_w_j := get_float(ss, "Azimuth") * to_rad

	switch array_type {
	case ArrayTypeFixedTilted:
		return NewShadingFixedTilted(beta_w_j, alpha_w_j)
	case ArrayTypeUnlimitedRows:

		// アレイ間のピッチ, m
		l_p_j := get_float(ss, "Pitch")

		// アレイの奥行（傾斜面に沿った幅）, m
		l_w_j := get_float(ss, "CollBandWidth")

		// 影限界角, rad
		phi_lim_j := get_float(ss, "ShadingLimit") * to_rad

		// 1ブロックあたりのアレイ段数
		n_rows_blk := get_int(ss, "RowsBlock")
		if n_rows_blk < 1 {
			panic(fmt.Sprintf("1ブロックあたりのアレイ段数は1以上としてください。（値: %d）", n_rows_blk))
		}

		// セル単位の段階影モデルを用いるか否か
		use_cell := get_bool_default(ss, "UseCellVal", false)

		if use_cell {

			// セルの一辺の長さ, m （設定値は cm で与えられる）
			l_cell_j := get_float(ss, "CellSize") / 100.0

			// アレイ奥行方向のストリング数
			n_str_j := get_int(ss, "StrInWid")
			if n_str_j < 1 {
				panic(fmt.Sprintf("アレイ奥行方向のストリング数は1以上としてください。（値: %d）", n_str_j))
			}

			return NewShadingUnlimitedRowsCell(beta_w_j, alpha_w_j, l_p_j, l_w_j, phi_lim_j, l_cell_j, n_str_j)
		}

		return NewShadingUnlimitedRows(beta_w_j, alpha_w_j, l_p_j, l_w_j, phi_lim_j, n_rows_blk)
	default:
		panic(array_type)
	}
}

//---------------------------------------------------------------------------------------------------//

// 固定傾斜式アレイ（近接影を考慮しない）
type ShadingFixedTilted struct {
	_beta_w_j    float64 // アレイ面の傾斜角, rad
	_alpha_w_j   float64 // アレイ面の方位角, rad
	_f_shd_sky_j float64 // 天空日射に対する透過率, -
	_f_shd_ref_j float64 // 地面反射日射に対する透過率, -
}

/*
Args:
	beta_w_j: アレイ面の傾斜角, rad
	alpha_w_j: アレイ面の方位角, rad
*/
func NewShadingFixedTilted(beta_w_j float64, alpha_w_j float64) *ShadingFixedTilted {
	return &ShadingFixedTilted{
		_beta_w_j:  beta_w_j,
		_alpha_w_j: alpha_w_j,

		// 天空に対する形態係数をそのまま透過率とする。
		_f_shd_sky_j: (1.0 + math.Cos(beta_w_j)) / 2.0,

		// 地面に対する形態係数をそのまま透過率とする。
		_f_shd_ref_j: (1.0 - math.Cos(beta_w_j)) / 2.0,
	}
}

/*
直達日射に対する透過率とプロファイル角を計算する。

Args:
	theta_z_n: ステップ n における太陽天頂角, rad
	a_sun_n: ステップ n における太陽方位角, rad

Returns:
	タプル
		(1) ステップ n における直達日射の透過率, -
		(2) ステップ n におけるプロファイル角, rad

Notes:
	固定傾斜式アレイは前段のアレイを持たないため近接影は生じない。
	透過率は太陽位置によらず常に 1 であり、プロファイル角は計算しない。
*/
func (self *ShadingFixedTilted) get_f_shd_dn_j(theta_z_n float64, a_sun_n float64) (float64, float64) {
	return 1.0, 0.0
}

func (self *ShadingFixedTilted) get_f_shd_sky_j() float64 {
	return self._f_shd_sky_j
}

func (self *ShadingFixedTilted) get_f_shd_ref_j() float64 {
	return self._f_shd_ref_j
}

func (self *ShadingFixedTilted) get_beta_w_j() float64 {
	return self._beta_w_j
}

func (self *ShadingFixedTilted) get_alpha_w_j() float64 {
	return self._alpha_w_j
}

//---------------------------------------------------------------------------------------------------//

// 無限長多段配置式アレイ（連続値の影面積率モデル）
type ShadingUnlimitedRows struct {
	_beta_w_j    float64 // アレイ面の傾斜角, rad
	_alpha_w_j   float64 // アレイ面の方位角, rad
	_l_p_j       float64 // アレイ間のピッチ, m
	_l_w_j       float64 // アレイの奥行（傾斜面に沿った幅）, m
	_phi_lim_j   float64 // 影限界角, rad
	_n_rows_blk  int     // 1ブロックあたりのアレイ段数
	_r_blk_j     float64 // 段数補正係数（先頭段のみ影がかからないことの補正）, -
	_f_shd_sky_j float64 // 天空日射に対する透過率, -
	_f_shd_ref_j float64 // 地面反射日射に対する透過率, -
}

/*
Args:
	beta_w_j: アレイ面の傾斜角, rad
	alpha_w_j: アレイ面の方位角, rad
	l_p_j: アレイ間のピッチ, m
	l_w_j: アレイの奥行（傾斜面に沿った幅）, m
	phi_lim_j: 影限界角, rad
	n_rows_blk: 1ブロックあたりのアレイ段数
*/
func NewShadingUnlimitedRows(
	beta_w_j, alpha_w_j, l_p_j, l_w_j, phi_lim_j float64, n_rows_blk int,
) *ShadingUnlimitedRows {

	// 段数補正係数, -
	r_blk_j := _get_r_blk_j(n_rows_blk)

	return &ShadingUnlimitedRows{
		_beta_w_j:   beta_w_j,
		_alpha_w_j:  alpha_w_j,
		_l_p_j:      l_p_j,
		_l_w_j:      l_w_j,
		_phi_lim_j:  phi_lim_j,
		_n_rows_blk: n_rows_blk,
		_r_blk_j:    r_blk_j,

		// 天空日射に対する透過率, -
		//   影限界角までの天空のみが見えるものとし、段数補正を乗じる。
		_f_shd_sky_j: r_blk_j * (1.0 + math.Cos(phi_lim_j)) / 2.0,

		// 地面反射日射に対する透過率, -
		//   地面反射はブロック先頭段にのみ入射する。
		_f_shd_ref_j: 1.0 - r_blk_j,
	}
}

/*
直達日射に対する透過率とプロファイル角を計算する。

Args:
	theta_z_n: ステップ n における太陽天頂角, rad
	a_sun_n: ステップ n における太陽方位角, rad

Returns:
	タプル
		(1) ステップ n における直達日射の透過率, -
		(2) ステップ n におけるプロファイル角, rad
*/
func (self *ShadingUnlimitedRows) get_f_shd_dn_j(theta_z_n float64, a_sun_n float64) (float64, float64) {

	// ステップ n における前段アレイの影がかかる長さ, m
	l_shd_j_n, phi_p_j_n := _get_l_shd_j_n(theta_z_n, a_sun_n, self._alpha_w_j, self._beta_w_j, self._l_w_j, self._phi_lim_j)

	// ステップ n における影面積率（アレイ奥行に対する影のかかる長さの比）, -
	f_sf_j_n := l_shd_j_n / self._l_w_j

	return 1.0 - f_sf_j_n*self._r_blk_j, phi_p_j_n
}

func (self *ShadingUnlimitedRows) get_f_shd_sky_j() float64 {
	return self._f_shd_sky_j
}

func (self *ShadingUnlimitedRows) get_f_shd_ref_j() float64 {
	return self._f_shd_ref_j
}

func (self *ShadingUnlimitedRows) get_beta_w_j() float64 {
	return self._beta_w_j
}

func (self *ShadingUnlimitedRows) get_alpha_w_j() float64 {
	return self._alpha_w_j
}

//---------------------------------------------------------------------------------------------------//

// 無限長多段配置式アレイ（セル単位の段階影モデル）
type ShadingUnlimitedRowsCell struct {
	_beta_w_j    float64   // アレイ面の傾斜角, rad
	_alpha_w_j   float64   // アレイ面の方位角, rad
	_l_p_j       float64   // アレイ間のピッチ, m
	_l_w_j       float64   // アレイの奥行（傾斜面に沿った幅）, m
	_phi_lim_j   float64   // 影限界角, rad
	_l_cell_j    float64   // セルの一辺の長さ, m
	_n_str_j     int       // アレイ奥行方向のストリング数
	_cell_bnd_j  []float64 // ストリング境界のセル数, [n_str+1]
	_f_step_j    []float64 // ストリング境界における影面積率の段階値, -, [n_str+1]
	_f_shd_sky_j float64   // 天空日射に対する透過率, -
	_f_shd_ref_j float64   // 地面反射日射に対する透過率, -
}

/*
Args:
	beta_w_j: アレイ面の傾斜角, rad
	alpha_w_j: アレイ面の方位角, rad
	l_p_j: アレイ間のピッチ, m
	l_w_j: アレイの奥行（傾斜面に沿った幅）, m
	phi_lim_j: 影限界角, rad
	l_cell_j: セルの一辺の長さ, m
	n_str_j: アレイ奥行方向のストリング数

Notes:
	セル単位モデルではストリング単位の電気的な出力低下を影面積率に反映するため、
	段数補正係数は用いない（1 とする）。このため地面反射日射に対する透過率は 0 となる。
*/
func NewShadingUnlimitedRowsCell(
	beta_w_j, alpha_w_j, l_p_j, l_w_j, phi_lim_j, l_cell_j float64, n_str_j int,
) *ShadingUnlimitedRowsCell {

	// ストリング境界のセル数, [n_str+1]
	//   インデックス 0 は影のかかる長さゼロに対応する。
	cell_bnd_j := make([]float64, n_str_j+1)

	// ストリング境界における影面積率の段階値, -, [n_str+1]
	f_step_j := make([]float64, n_str_j+1)

	for i := 0; i <= n_str_j; i++ {
		r := float64(i) / float64(n_str_j)
		cell_bnd_j[i] = r * (l_w_j / l_cell_j)
		f_step_j[i] = r
	}

	// 段数補正係数は用いない。
	const r_blk_j = 1.0

	return &ShadingUnlimitedRowsCell{
		_beta_w_j:   beta_w_j,
		_alpha_w_j:  alpha_w_j,
		_l_p_j:      l_p_j,
		_l_w_j:      l_w_j,
		_phi_lim_j:  phi_lim_j,
		_l_cell_j:   l_cell_j,
		_n_str_j:    n_str_j,
		_cell_bnd_j: cell_bnd_j,
		_f_step_j:   f_step_j,

		_f_shd_sky_j: r_blk_j * (1.0 + math.Cos(phi_lim_j)) / 2.0,
		_f_shd_ref_j: 1.0 - r_blk_j,
	}
}

/*
直達日射に対する透過率とプロファイル角を計算する。

Args:
	theta_z_n: ステップ n における太陽天頂角, rad
	a_sun_n: ステップ n における太陽方位角, rad

Returns:
	タプル
		(1) ステップ n における直達日射の透過率, -
		(2) ステップ n におけるプロファイル角, rad

Notes:
	影のかかる長さをセル数に換算し、ストリング境界の区間ごとに定義された
	段階値を影面積率とする。
*/
func (self *ShadingUnlimitedRowsCell) get_f_shd_dn_j(theta_z_n float64, a_sun_n float64) (float64, float64) {

	// ステップ n における前段アレイの影がかかる長さ, m
	l_shd_j_n, phi_p_j_n := _get_l_shd_j_n(theta_z_n, a_sun_n, self._alpha_w_j, self._beta_w_j, self._l_w_j, self._phi_lim_j)

	if l_shd_j_n <= 0.0 {
		return 1.0, phi_p_j_n
	}

	// ステップ n における影のかかるセル数, -
	n_cell_shd_j_n := l_shd_j_n / self._l_cell_j

	// ステップ n における影面積率, -
	f_sf_j_n := self._get_f_sf_cell_j_n(n_cell_shd_j_n)

	return 1.0 - f_sf_j_n, phi_p_j_n
}

/*
影のかかるセル数から影面積率を計算する。

Args:
	n_cell_shd_j_n: ステップ n における影のかかるセル数, -

Returns:
	ステップ n における影面積率, -

Notes:
	区間の判定は上端を含む閉区間とし、境界値ちょうどでは段階値そのものを返す
	（区間幅が1セル以上であれば min により段階値に丸められる）。
	最終境界を超えるセル数に対しては初期値 1 を保持する。
	（区間にあてはまらない場合に初期値 1 が残る挙動は元の計算式に由来する。）
*/
func (self *ShadingUnlimitedRowsCell) _get_f_sf_cell_j_n(n_cell_shd_j_n float64) float64 {

	f_sf_j_n := 1.0

	for i := 1; i <= self._n_str_j; i++ {
		if self._cell_bnd_j[i-1] < n_cell_shd_j_n && n_cell_shd_j_n <= self._cell_bnd_j[i] {
			f_sf_j_n = math.Min(
				self._f_step_j[i-1]+self._f_step_j[i]*(n_cell_shd_j_n-self._cell_bnd_j[i-1]),
				self._f_step_j[i],
			)
			break
		}
	}

	return f_sf_j_n
}

func (self *ShadingUnlimitedRowsCell) get_f_shd_sky_j() float64 {
	return self._f_shd_sky_j
}

func (self *ShadingUnlimitedRowsCell) get_f_shd_ref_j() float64 {
	return self._f_shd_ref_j
}

func (self *ShadingUnlimitedRowsCell) get_beta_w_j() float64 {
	return self._beta_w_j
}

func (self *ShadingUnlimitedRowsCell) get_alpha_w_j() float64 {
	return self._alpha_w_j
}

//---------------------------------------------------------------------------------------------------//

/*
段数補正係数を計算する。

Args:
	n_rows_blk: 1ブロックあたりのアレイ段数

Returns:
	段数補正係数, -

Notes:
	ブロック先頭の1段には前段アレイの影がかからないため、
	影の影響を受ける段数の比 (n-1)/n を補正係数とする。
*/
func _get_r_blk_j(n_rows_blk int) float64 {
	return float64(n_rows_blk-1) / float64(n_rows_blk)
}

/*
プロファイル角を計算する。

Args:
	theta_z_n: ステップ n における太陽天頂角, rad
	a_sun_n: ステップ n における太陽方位角, rad
	alpha_w_j: アレイ面の方位角, rad

Returns:
	ステップ n におけるプロファイル角, rad

Notes:
	プロファイル角は、太陽高度をアレイ面の方位角を含む鉛直面へ投影した角度である。
	この関数は太陽がアレイ面の前面にある場合（|a_sun_n - alpha_w_j| <= π/2）にのみ
	呼び出されることを前提とする。
*/
func _get_phi_p_j_n(theta_z_n float64, a_sun_n float64, alpha_w_j float64) float64 {

	// ステップ n における太陽高度, rad
	h_sun_n := math.Pi/2.0 - theta_z_n

	return math.Atan(math.Tan(h_sun_n) / math.Cos(a_sun_n-alpha_w_j))
}

/*
前段アレイの影がアレイ面にかかる長さを計算する。

Args:
	theta_z_n: ステップ n における太陽天頂角, rad
	a_sun_n: ステップ n における太陽方位角, rad
	alpha_w_j: アレイ面の方位角, rad
	beta_w_j: アレイ面の傾斜角, rad
	l_w_j: アレイの奥行（傾斜面に沿った幅）, m
	phi_lim_j: 影限界角, rad

Returns:
	タプル
		(1) ステップ n における影のかかる長さ（アレイ面に沿った長さ）, m
		(2) ステップ n におけるプロファイル角, rad

Notes:
	影のかかる長さは、アレイ面の下端 A・前段アレイの上端 C・影の先端 A' の
	3点がつくる三角形に正弦定理を適用して求める。
	辺 AC の長さは影限界角の定義（プロファイル角が影限界角に等しいとき
	影の先端がちょうどアレイ上端に達する）から定まる定数である。
	次の場合は影が生じないため 0 を返す。
		・太陽が地平線下にある場合（theta_z_n > π/2）
		・太陽がアレイ面の背面にある場合（|a_sun_n - alpha_w_j| > π/2）
		・プロファイル角が影限界角以上の場合
*/
func _get_l_shd_j_n(
	theta_z_n, a_sun_n, alpha_w_j, beta_w_j, l_w_j, phi_lim_j float64,
) (float64, float64) {

	// 太陽が地平線下にある場合は影そのものができない。
	if theta_z_n > math.Pi/2.0 {
		return 0.0, 0.0
	}

	// 太陽がアレイ面の背面にある場合は直達日射があたらない。
	if math.Abs(a_sun_n-alpha_w_j) > math.Pi/2.0 {
		return 0.0, 0.0
	}

	// ステップ n におけるプロファイル角, rad
	phi_p_j_n := _get_phi_p_j_n(theta_z_n, a_sun_n, alpha_w_j)

	// プロファイル角が影限界角以上の場合、前段アレイの影はこのアレイに届かない。
	if phi_lim_j <= phi_p_j_n {
		return 0.0, phi_p_j_n
	}

	// 辺 AC の長さ, m
	l_ac_j := math.Sin(beta_w_j) * l_w_j / math.Sin(phi_lim_j)

	// 三角形 A-C-A' の内角, rad
	angle_caap_j := math.Pi - phi_lim_j - beta_w_j
	angle_capa_j_n := math.Pi - angle_caap_j - (phi_lim_j - phi_p_j_n)
	angle_acap_j_n := math.Pi - angle_caap_j - angle_capa_j_n

	// ステップ n における影のかかる長さ（辺 AA' の長さ）, m
	l_shd_j_n := l_ac_j * math.Sin(angle_acap_j_n) / math.Sin(angle_capa_j_n)

	return l_shd_j_n, phi_p_j_n
}
