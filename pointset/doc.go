// Package pointset selects and builds point indexes. Backends are chosen by
// Kind or from "key=value" option strings:
//
//	idx, err := pointset.Open("index=kd", "palette=mono")
//
// Recognised keys are index (kd, brute) and palette (default, mono).
package pointset
