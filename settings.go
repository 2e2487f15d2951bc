package main

import (
	"fmt"
	"log"
	"strconv"
)

/*
アレイ仕様の設定値へのアクセスを抽象化する。

設定値はキー（大文字・小文字を区別する）に対して文字列で保持されることを前提とし、
数値・真偽値への変換は取得側の関数で行う。
*/
type SettingStore interface {
	/*
		キーに対応する設定値を文字列として取得する。

		Args:
			key: 設定値のキー

		Returns:
			タプル
				(1) 設定値（文字列）
				(2) キーが存在するか否か（存在する = true）
	*/
	get(key string) (string, bool)
}

// JSONファイルから読み込んだ辞書をそのまま SettingStore として扱う。
type Settings map[string]interface{}

func (s Settings) get(key string) (string, bool) {
	v, ok := s[key]
	if !ok {
		return "", false
	}

	// JSON上は文字列・数値・真偽値のいずれの型も許容する。
	switch t := v.(type) {
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		panic(fmt.Sprintf("設定値 `%s` の型を文字列に変換できません。", key))
	}
}

/*
必須の設定値を文字列として取得する。

Args:
	ss: 設定ストア
	key: 設定値のキー

Returns:
	設定値（文字列）

Notes:
	キーが存在しない場合は計算を続行できないため panic とする。
*/
func get_string(ss SettingStore, key string) string {
	v, ok := ss.get(key)
	if !ok {
		panic(fmt.Sprintf("必須の設定値 `%s` が定義されていません。", key))
	}
	return v
}

/*
任意の設定値を文字列として取得する。キーが存在しない場合は既定値を返す。

Args:
	ss: 設定ストア
	key: 設定値のキー
	def: 既定値

Returns:
	設定値（文字列）
*/
func get_string_default(ss SettingStore, key string, def string) string {
	v, ok := ss.get(key)
	if !ok {
		log.Printf("設定値 `%s` が定義されていないため既定値 `%s` を用います。", key, def)
		return def
	}
	return v
}

/*
必須の設定値を実数として取得する。

Args:
	ss: 設定ストア
	key: 設定値のキー

Returns:
	設定値（実数）

Notes:
	キーが存在しない場合・実数として解釈できない場合は panic とする。
*/
func get_float(ss SettingStore, key string) float64 {
	s := get_string(ss, key)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		panic(fmt.Sprintf("設定値 `%s` を実数として解釈できません。（値: `%s`）", key, s))
	}
	return v
}

/*
必須の設定値を整数として取得する。

Args:
	ss: 設定ストア
	key: 設定値のキー

Returns:
	設定値（整数）

Notes:
	キーが存在しない場合・整数として解釈できない場合は panic とする。
	"10.0" のような小数点付き表記も、値が整数であれば許容する。
*/
func get_int(ss SettingStore, key string) int {
	s := get_string(ss, key)
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != float64(int(f)) {
		panic(fmt.Sprintf("設定値 `%s` を整数として解釈できません。（値: `%s`）", key, s))
	}
	return int(f)
}

/*
任意の設定値を真偽値として取得する。キーが存在しない場合は既定値を返す。

Args:
	ss: 設定ストア
	key: 設定値のキー
	def: 既定値

Returns:
	設定値（真偽値）

Notes:
	キーは存在するが真偽値として解釈できない場合は panic とする。
*/
func get_bool_default(ss SettingStore, key string, def bool) bool {
	s, ok := ss.get(key)
	if !ok {
		log.Printf("設定値 `%s` が定義されていないため既定値 `%t` を用います。", key, def)
		return def
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		panic(fmt.Sprintf("設定値 `%s` を真偽値として解釈できません。（値: `%s`）", key, s))
	}
	return v
}
