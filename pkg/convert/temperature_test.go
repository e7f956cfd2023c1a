package convert

import "testing"

func TestAnnotateTemperatures(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "degree sign",
			in:   "Preheat oven to 350°F",
			want: "Preheat oven to 350°F (177°C)",
		},
		{
			name: "bare F",
			in:   "Bake at 425 F until golden",
			want: "Bake at 425 F (218°C) until golden",
		},
		{
			name: "attached F",
			in:   "heat oil to 375F",
			want: "heat oil to 375F (191°C)",
		},
		{
			name: "degrees word",
			in:   "Bake at 350 degrees for 30 minutes",
			want: "Bake at 350 degrees (177°C) for 30 minutes",
		},
		{
			name: "degrees fahrenheit",
			in:   "roast at 400 degrees Fahrenheit",
			want: "roast at 400 degrees Fahrenheit (204°C)",
		},
		{
			name: "multiple mentions",
			in:   "start at 450°F then drop to 350°F",
			want: "start at 450°F (232°C) then drop to 350°F (177°C)",
		},
		{
			name: "lowercase f is prose",
			in:   "simmer for 10 minutes",
			want: "simmer for 10 minutes",
		},
		{
			name: "no fahrenheit marker",
			in:   "divide into 4 portions",
			want: "divide into 4 portions",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AnnotateTemperatures(tt.in); got != tt.want {
				t.Errorf("AnnotateTemperatures(%q)\n got  %q\n want %q", tt.in, got, tt.want)
			}
		})
	}
}
