package jsonutil_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/drblury/swaggerversioning/jsonutil"
)

func Example() {
	type forecast struct {
		Date         string `json:"date"`
		TemperatureC int    `json:"temperatureC"`
		Summary      string `json:"summary"`
	}

	day := forecast{
		Date:         "2024-05-02",
		TemperatureC: 21,
		Summary:      "Mild",
	}

	data, _ := jsonutil.Marshal(day)
	fmt.Println(string(data))

	var decoded forecast
	_ = jsonutil.Unmarshal(data, &decoded)
	fmt.Println(decoded.TemperatureC)

	buf := &bytes.Buffer{}
	_ = jsonutil.Encode(buf, day)

	var streamed forecast
	_ = jsonutil.Decode(buf, &streamed)
	fmt.Println(streamed.Summary)

	// Output:
	// {"date":"2024-05-02","temperatureC":21,"summary":"Mild"}
	// 21
	// Mild
}

func ExampleMarshalIndent() {
	type info struct {
		Title       string `json:"title"`
		Version     string `json:"version"`
		Description string `json:"description,omitempty"`
	}

	data, err := jsonutil.MarshalIndent(info{Title: "Swagger And Versioning", Version: "1.0"}, "", "  ")
	if err != nil {
		fmt.Println("marshal error:", err)
		return
	}

	fmt.Println(strings.TrimSpace(string(data)))

	// Output:
	// {
	//   "title": "Swagger And Versioning",
	//   "version": "1.0"
	// }
}
