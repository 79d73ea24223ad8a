// Package schema traduce entre la forma externa de las filas (columnas del store remoto)
// y las entidades internas. Es el único lugar que conoce el renombre desc/descr y la
// normalización de la lista de imágenes.
package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Columnas compartidas.
const (
	colID        = "id"
	colCreatedAt = "created_at"
)

// pgTimestampLayout formato texto de timestamptz en PostgreSQL.
const pgTimestampLayout = "2006-01-02 15:04:05.999999999-07"

func asString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case []byte:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}

// asID acepta identificadores de texto o numéricos (bigint / JSON number).
func asID(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int:
		return strconv.Itoa(t)
	default:
		return asString(t)
	}
}

func asBool(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, _ := strconv.ParseBool(t)
		return b
	}
	return false
}

func asTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{time.RFC3339Nano, pgTimestampLayout} {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts
			}
		}
	}
	return time.Time{}
}

// NormalizeImages devuelve la galería a partir del valor externo de images:
//   - string: se intenta decodificar como JSON;
//   - lista nativa ([]string o []any): se conservan los elementos de texto en orden;
//   - si no hay lista válida o está vacía: [img] cuando img no está vacío, si no [].
//
// Nunca devuelve nil.
func NormalizeImages(raw any, img string) []string {
	var list []string
	switch v := raw.(type) {
	case string:
		list = decodeImageList([]byte(v))
	case []byte:
		list = decodeImageList(v)
	default:
		list = stringElems(v)
	}
	if len(list) > 0 {
		return list
	}
	if img != "" {
		return []string{img}
	}
	return []string{}
}

func decodeImageList(b []byte) []string {
	var decoded any
	if err := json.Unmarshal(b, &decoded); err != nil {
		return nil
	}
	return stringElems(decoded)
}

func stringElems(v any) []string {
	switch t := v.(type) {
	case []string:
		out := make([]string, 0, len(t))
		return append(out, t...)
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
