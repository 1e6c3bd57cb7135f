package main

import (
	"encoding/csv"
	"fmt"
	"os"
)

// writeCSV writes the probe node's per-step voltage trace as "t,v\n"
// rows, a debug artifact and not part of the core simulation contract.
func writeCSV(path string, dt float64, voltages []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"t", "v"}); err != nil {
		return err
	}
	for i, v := range voltages {
		t := float64(i) * dt
		if err := w.Write([]string{fmt.Sprintf("%g", t), fmt.Sprintf("%g", v)}); err != nil {
			return err
		}
	}
	return w.Error()
}
