package domain

import "testing"

func validConditionData() ConditionData {
	return ConditionData{
		SoilComposition: &SoilComposition{
			PH:        f64(6.5),
			Type:      "loamy",
			Nutrients: map[string]interface{}{"nitrogen": "medium"},
		},
		Temperature: f64(24.5),
		Humidity:    f64(80),
		Altitude:    f64(1200),
	}
}

func TestConditionDataValidate(t *testing.T) {
	testCases := []struct {
		name      string
		mutate    func(*ConditionData)
		wantField string
	}{
		{name: "valid", mutate: func(*ConditionData) {}},
		{
			name:      "missing soil composition",
			mutate:    func(d *ConditionData) { d.SoilComposition = nil },
			wantField: "condition_data.soil_composition",
		},
		{
			name:      "missing pH",
			mutate:    func(d *ConditionData) { d.SoilComposition.PH = nil },
			wantField: "condition_data.soil_composition.pH",
		},
		{
			name:      "pH out of range",
			mutate:    func(d *ConditionData) { d.SoilComposition.PH = f64(14.1) },
			wantField: "condition_data.soil_composition.pH",
		},
		{
			name:      "bad soil type",
			mutate:    func(d *ConditionData) { d.SoilComposition.Type = "volcanic" },
			wantField: "condition_data.soil_composition.type",
		},
		{
			name:      "missing nutrients",
			mutate:    func(d *ConditionData) { d.SoilComposition.Nutrients = nil },
			wantField: "condition_data.soil_composition.nutrients",
		},
		{
			name:      "temperature too cold",
			mutate:    func(d *ConditionData) { d.Temperature = f64(-50.5) },
			wantField: "condition_data.temperature",
		},
		{
			name:      "humidity over 100",
			mutate:    func(d *ConditionData) { d.Humidity = f64(100.5) },
			wantField: "condition_data.humidity",
		},
		{
			name:      "altitude below dead sea floor",
			mutate:    func(d *ConditionData) { d.Altitude = f64(-501) },
			wantField: "condition_data.altitude",
		},
		{
			name:      "missing temperature",
			mutate:    func(d *ConditionData) { d.Temperature = nil },
			wantField: "condition_data.temperature",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d := validConditionData()
			tc.mutate(&d)
			err := d.Validate()
			if tc.wantField == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error on %s", tc.wantField)
			}
			assertFieldError(t, err, tc.wantField)
		})
	}
}

func TestConditionDataValidate_CollectsAllFailures(t *testing.T) {
	d := validConditionData()
	d.Temperature = f64(99)
	d.Humidity = nil
	err := d.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	if len(err.FieldErrors) != 2 {
		t.Fatalf("len(FieldErrors) = %d, want 2: %v", len(err.FieldErrors), err.FieldErrors)
	}
}
