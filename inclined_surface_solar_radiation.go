package main

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

/*
アレイ面の方位角・傾斜角に応じて傾斜面の日射量を計算する。

Args:
	rsrc: SolarResource クラス
	beta_w_j: アレイ面の傾斜角, rad
	alpha_w_j: アレイ面の方位角, rad

Returns:
	タプル
		(1) ステップ n におけるアレイ面に入射する日射量のうち直達成分, W/m2, [n]
		(2) ステップ n におけるアレイ面に入射する日射量のうち天空成分, W/m2, [n]
		(3) ステップ n におけるアレイ面に入射する日射量のうち地盤反射成分, W/m2, [n]
*/
func get_i_srf_j_ns(
	rsrc *SolarResource,
	beta_w_j float64,
	alpha_w_j float64,
) (i_srf_dn_j_ns, i_srf_sky_j_ns, i_srf_ref_j_ns []float64) {

	// ステップ n における法線面直達日射量, W/m2, [n]
	i_dn_ns := rsrc._i_dn_ns

	// ステップ n における水平面天空日射量, W/m2, [n]
	i_sky_ns := rsrc._i_sky_ns

	// ステップ n における太陽天頂角, rad, [n]
	theta_z_ns := rsrc._theta_z_ns

	// ステップ n における太陽方位角, rad, [n]
	a_sun_ns := rsrc._a_sun_ns

	// ステップ n におけるアレイ面に入射する太陽の入射角の余弦, -, [n]
	cos_phi_j_ns := _get_cos_phi_j_ns(theta_z_ns, a_sun_ns, beta_w_j, alpha_w_j)

	// ステップ n における水平面全天日射量, W/m2, [n]
	i_hrz_ns := _get_i_hrz_ns(i_dn_ns, i_sky_ns, theta_z_ns)

	// アレイ面の天空に対する形態係数, -
	f_sky_j := _get_f_sky_j(beta_w_j)

	// アレイ面の地面に対する形態係数, -
	f_gnd_j := _get_f_gnd_j(f_sky_j)

	// ステップ n におけるアレイ面に入射する日射量の地盤反射成分, W/m2, [n]
	i_srf_ref_j_ns = _get_i_srf_ref_j_ns(f_gnd_j, i_hrz_ns)

	// ステップ n におけるアレイ面に入射する日射量の天空成分, W/m2, [n]
	i_srf_sky_j_ns = _get_i_srf_sky_j_ns(i_sky_ns, f_sky_j)

	// ステップ n におけるアレイ面に入射する日射量の直達成分, W/m2, [n]
	i_srf_dn_j_ns = _get_i_srf_dn_j_ns(i_dn_ns, cos_phi_j_ns)

	return i_srf_dn_j_ns, i_srf_sky_j_ns, i_srf_ref_j_ns
}

/*
アレイ面に入射する太陽の入射角の余弦を計算する。

Args:
	theta_z_ns: ステップ n における太陽天頂角, rad, [n]
	a_sun_ns: ステップ n における太陽方位角, rad, [n]
	beta_w_j: アレイ面の傾斜角, rad
	alpha_w_j: アレイ面の方位角, rad

Returns:
	ステップ n におけるアレイ面に入射する太陽の入射角の余弦, -, [n]

Notes:
	余弦がマイナス（太陽がアレイ面の裏面に位置する場合）は値をゼロにする。
	（法線面直達日射量にこの値をかけるため、結果的に日射があたらないという計算になる。）
	太陽が地平線下（theta_z_n > π/2）の場合も同様に余弦はマイナスとなりゼロに丸められる。
*/
func _get_cos_phi_j_ns(theta_z_ns, a_sun_ns []float64, beta_w_j, alpha_w_j float64) []float64 {

	cos_beta := math.Cos(beta_w_j)
	sin_beta := math.Sin(beta_w_j)

	cos_phi_j_ns := make([]float64, len(theta_z_ns))
	for i := 0; i < len(theta_z_ns); i++ {
		theta_z := theta_z_ns[i]
		cos_phi_j_ns[i] = math.Max(
			math.Cos(theta_z)*cos_beta+math.Sin(theta_z)*sin_beta*math.Cos(a_sun_ns[i]-alpha_w_j),
			0.0,
		)
	}

	return cos_phi_j_ns
}

/*
アレイ面に入射する日射量の直達成分を計算する。

Args:
	i_dn_ns: ステップ n における法線面直達日射量, W/m2, [n]
	cos_phi_j_ns: ステップ n におけるアレイ面に入射する太陽の入射角の余弦, -, [n]

Returns:
	ステップ n におけるアレイ面に入射する日射量の直達成分, W/m2, [n]
*/
func _get_i_srf_dn_j_ns(i_dn_ns []float64, cos_phi_j_ns []float64) []float64 {
	i_srf_dn_j_ns := make([]float64, len(cos_phi_j_ns))
	for i := 0; i < len(cos_phi_j_ns); i++ {
		i_srf_dn_j_ns[i] = i_dn_ns[i] * cos_phi_j_ns[i]
	}

	return i_srf_dn_j_ns
}

/*
アレイ面に入射する日射量の天空成分を計算する。

Args:
	i_sky_ns: ステップ n における水平面天空日射量, W/m2, [n]
	f_sky_j: アレイ面の天空に対する形態係数, -

Returns:
	ステップ n におけるアレイ面に入射する日射量の天空成分, W/m2, [n]
*/
func _get_i_srf_sky_j_ns(i_sky_ns []float64, f_sky_j float64) []float64 {
	i_srf_sky_j_ns := make([]float64, len(i_sky_ns))
	floats.ScaleTo(i_srf_sky_j_ns, f_sky_j, i_sky_ns)
	return i_srf_sky_j_ns
}

/*
アレイ面の日射量のうち地盤反射成分を求める。

Args:
	f_gnd_j: アレイ面の地面に対する形態係数, -
	i_hrz_ns: ステップ n における水平面全天日射量, W/m2, [n]

Returns:
	ステップ n におけるアレイ面に入射する日射量の地盤反射成分, W/m2, [n]
*/
func _get_i_srf_ref_j_ns(f_gnd_j float64, i_hrz_ns []float64) []float64 {
	// 地面の日射反射率
	const rho_gnd = 0.1

	i_srf_ref_j_ns := make([]float64, len(i_hrz_ns))
	floats.ScaleTo(i_srf_ref_j_ns, f_gnd_j*rho_gnd, i_hrz_ns)

	return i_srf_ref_j_ns
}

/*
アレイ面の天空に対する形態係数を計算する。

Args:
	beta_w_j: アレイ面の傾斜角, rad

Returns:
	アレイ面の天空に対する形態係数, -

Notes:
	アレイ面の傾斜角は水平面を0とし、垂直面をπ/2とし、値は0～πの範囲をとる。
*/
func _get_f_sky_j(beta_w_j float64) float64 {
	if beta_w_j < 0 {
		panic("アレイ面の傾斜角が0より小さい値となっています")
	}

	if beta_w_j > math.Pi {
		panic("アレイ面の傾斜角がπより大きい値となっています")
	}

	return (1.0 + math.Cos(beta_w_j)) / 2.0
}

/*
地面に対するアレイ面の形態係数を計算する。

Args:
	f_sky_j: アレイ面の天空に対する形態係数, -

Returns:
	アレイ面の地面に対する形態係数, -
*/
func _get_f_gnd_j(f_sky_j float64) float64 {
	f_gnd_j := 1.0 - f_sky_j
	return f_gnd_j
}

/*
水平面全天日射量を計算する。

Args:
	i_dn_ns: ステップ n における法線面直達日射量, W/m2, [n]
	i_sky_ns: ステップ n における水平面天空日射量, W/m2, [n]
	theta_z_ns: ステップ n における太陽天頂角, rad, [n]

Returns:
	ステップ n における水平面全天日射量, W/m2, [n]
*/
func _get_i_hrz_ns(i_dn_ns, i_sky_ns, theta_z_ns []float64) []float64 {
	i_hrz_ns := make([]float64, len(i_dn_ns))
	for i := 0; i < len(i_dn_ns); i++ {
		// 太陽が地平線下にある場合は直達成分をゼロとする。
		cos_theta_z := math.Max(math.Cos(theta_z_ns[i]), 0)
		i_hrz_ns[i] = cos_theta_z*i_dn_ns[i] + i_sky_ns[i]
	}

	return i_hrz_ns
}
