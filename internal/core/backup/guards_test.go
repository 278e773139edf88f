package backup

import "testing"

func TestCanImport(t *testing.T) {
	tests := []struct {
		name        string
		ctx         ImportContext
		wantAllowed bool
		wantReason  string
	}{
		{
			name:        "complete file is allowed",
			ctx:         ImportContext{HasProfile: true, HasHospitals: true, HasShifts: true},
			wantAllowed: true,
		},
		{
			name:        "missing profile is rejected",
			ctx:         ImportContext{HasHospitals: true, HasShifts: true},
			wantAllowed: false,
			wantReason:  "invalid backup file: missing userProfile",
		},
		{
			name:        "missing hospitals is rejected",
			ctx:         ImportContext{HasProfile: true, HasShifts: true},
			wantAllowed: false,
			wantReason:  "invalid backup file: missing hospitals",
		},
		{
			name:        "missing shifts is rejected",
			ctx:         ImportContext{HasProfile: true, HasHospitals: true},
			wantAllowed: false,
			wantReason:  "invalid backup file: missing shifts",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanImport(tt.ctx)

			if result.Allowed != tt.wantAllowed {
				t.Errorf("CanImport() Allowed = %v, want %v", result.Allowed, tt.wantAllowed)
			}
			if result.Reason != tt.wantReason {
				t.Errorf("CanImport() Reason = %q, want %q", result.Reason, tt.wantReason)
			}

			err := result.Error()
			if tt.wantAllowed && err != nil {
				t.Errorf("CanImport().Error() = %v, want nil", err)
			}
			if !tt.wantAllowed && err == nil {
				t.Error("CanImport().Error() = nil, want error")
			}
		})
	}
}
