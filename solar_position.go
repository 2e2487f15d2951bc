package main

import "math"

/*
ステップ n における太陽位置（天頂角・方位角）を計算する。
*/

/*
太陽位置を計算する。

Args:
	phi_loc: 緯度, rad
	lambda_loc: 経度, rad
	itv: 生成するデータの時間間隔

Returns:
	タプル
		(1) ステップ n における太陽天頂角, rad, [n]
		(2) ステップ n における太陽方位角, rad, [n]

Notes:
	太陽天頂角は太陽高度の余角（π/2 - 太陽高度）であり、
	太陽が地平線下にある場合は π/2 を超える値をとる。
	太陽が天頂にある場合は方位角が定義できないため 0 とする。
*/
func calc_solar_position(phi_loc float64, lambda_loc float64, itv Interval) ([]float64, []float64) {

	// 標準子午線における経度（135°）, rad
	const lambda_loc_mer = 135.0 * math.Pi / 180.0

	// 太陽位置の計算は1989年を基準とする。1968年との年差, year
	const n_year = 1989 - 1968

	// 平均軌道上の近日点通過日（暦表時による1968年1月1日正午基準の日差）, d
	d_0 := 3.71 + 0.2596*float64(n_year) - float64(int((n_year+3.0)/4.0))

	// 近点年（近日点基準の公転周期日数）, d
	const d_ay = 365.2596

	// 北半球の冬至の日赤緯, rad
	const delta_0 = -23.4393 * math.Pi / 180.0

	// 1時間を分割するステップ数とインターバル時間, h
	n_hour := itv.get_n_hour()
	t_itv := itv.get_time()

	n := itv.get_annual_number_of_steps()
	theta_z_ns := make([]float64, n)
	a_sun_ns := make([]float64, n)

	sin_phi_loc := math.Sin(phi_loc)
	cos_phi_loc := math.Cos(phi_loc)

	off := 0
	for d := 1; d <= 365; d++ {

		// 年通算日（1/1を1とする）に対する平均近点離角, rad
		m := 2.0 * math.Pi * (float64(d) - d_0) / d_ay

		// 近日点と冬至点の角度, rad
		epsilon := (12.3901 + 0.0172*(float64(n_year)+m/(2.0*math.Pi))) * math.Pi / 180.0

		// 真近点離角, rad
		v := m + (1.914*math.Sin(m)+0.02*math.Sin(2.0*m))*math.Pi/180.0

		// 均時差, rad
		e_t := (m - v) - math.Atan(0.043*math.Sin(2.0*(v+epsilon))/(1.0-0.043*math.Cos(2.0*(v+epsilon))))

		// 赤緯, rad （-π/2 ～ π/2 の値をとる）
		delta := math.Asin(math.Cos(v+epsilon) * math.Sin(delta_0))

		sin_delta := math.Sin(delta)
		cos_delta := math.Cos(delta)

		for j := 0; j < 24*n_hour; j++ {

			// 標準時, h
			t_m := float64(j) * t_itv

			// 時角, rad
			omega := ((t_m-12.0)*15.0)*math.Pi/180.0 + (lambda_loc - lambda_loc_mer) + e_t

			// 太陽高度, rad （太陽が沈んでいる場合はマイナスの値をとる）
			h_sun := math.Asin(sin_phi_loc*sin_delta + cos_phi_loc*cos_delta*math.Cos(omega))

			// 太陽天頂角, rad
			theta_z_ns[off] = math.Pi/2.0 - h_sun

			// 太陽方位角, rad
			//   太陽が天頂にある場合（cos(h_sun) = 0）は方位角が定義できないため 0 とする。
			cos_h_sun := math.Cos(h_sun)
			if cos_h_sun == 0.0 {
				a_sun_ns[off] = 0.0
			} else {
				// 方位角の正弦・余弦から atan2 で -π ～ π の値を求める。
				sin_a_sun := cos_delta * math.Sin(omega) / cos_h_sun
				cos_a_sun := (math.Sin(h_sun)*sin_phi_loc - sin_delta) / (cos_h_sun * cos_phi_loc)
				a_sun_ns[off] = math.Atan2(sin_a_sun, cos_a_sun)
			}

			off++
		}
	}

	return theta_z_ns, a_sun_ns
}
