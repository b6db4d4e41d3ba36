package distributor

import (
	"errors"
	"strings"
	"testing"

	"bom-checker/feature/taxonomy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func param(parameterID, valueID int, value string) Parameter {
	pid := ID(parameterID)
	vid := ID(valueID)
	return Parameter{ParameterID: &pid, Value: &value, ValueID: &vid}
}

func bareParam(parameterID int) Parameter {
	pid := ID(parameterID)
	return Parameter{ParameterID: &pid}
}

func mountingParam(valueID int) Parameter {
	return param(taxonomy.ParameterMountingType, valueID, "Mounting Type")
}

func packageParam(pkg taxonomy.PackageType) Parameter {
	return param(taxonomy.ParameterPackageCase, int(pkg), "Package / Case")
}

func TestClassify(t *testing.T) {
	c := NewClassifier(taxonomy.Default())

	tests := []struct {
		name   string
		params []Parameter
		want   taxonomy.Classification
	}{
		{
			name:   "MountingSMT",
			params: []Parameter{mountingParam(taxonomy.MountingSurfaceMount), packageParam(taxonomy.Package0805)},
			want:   taxonomy.Classification{Mount: taxonomy.MountSMT, Package: taxonomy.Package0805},
		},
		{
			name:   "MountingTH",
			params: []Parameter{packageParam(taxonomy.PackageTO92), mountingParam(taxonomy.MountingThroughHole)},
			want:   taxonomy.Classification{Mount: taxonomy.MountThroughHole, Package: taxonomy.PackageTO92},
		},
		{
			name:   "MountingWinsOverPackage",
			params: []Parameter{mountingParam(taxonomy.MountingThroughHole), packageParam(taxonomy.Package0805)},
			want:   taxonomy.Classification{Mount: taxonomy.MountThroughHole, Package: taxonomy.Package0805},
		},
		{
			name:   "AmbiguousRegardlessOfPackage",
			params: []Parameter{mountingParam(taxonomy.MountingSurfaceMountThroughHole), packageParam(taxonomy.Package0805)},
			want:   taxonomy.Classification{Mount: taxonomy.MountAmbiguous, Package: taxonomy.Package0805},
		},
		{
			name:   "AmbiguousWithoutPackage",
			params: []Parameter{mountingParam(taxonomy.MountingSurfaceMountThroughHole)},
			want:   taxonomy.Classification{Mount: taxonomy.MountAmbiguous, Package: taxonomy.PackageInvalid},
		},
		{
			name:   "FallbackToPackageSMT",
			params: []Parameter{packageParam(taxonomy.PackageSOT235)},
			want:   taxonomy.Classification{Mount: taxonomy.MountSMT, Package: taxonomy.PackageSOT235},
		},
		{
			name:   "UnrecognizedMountingFallsBackToPackage",
			params: []Parameter{mountingParam(1), packageParam(taxonomy.PackageDIP8)},
			want:   taxonomy.Classification{Mount: taxonomy.MountThroughHole, Package: taxonomy.PackageDIP8},
		},
		{
			name:   "UnrecognizedEverything",
			params: []Parameter{mountingParam(1), packageParam(2)},
			want:   taxonomy.Classification{Mount: taxonomy.MountUnknown, Package: 2},
		},
		{
			name:   "UnrecognizedMountingOnly",
			params: []Parameter{mountingParam(1)},
			want:   taxonomy.Classification{Mount: taxonomy.MountUnknown, Package: taxonomy.PackageInvalid},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(&Record{PartNumber: "PN", Parameters: tt.params})
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestClassify_Malformed(t *testing.T) {
	c := NewClassifier(taxonomy.Default())
	value := "10kOhms"
	noValueID := ID(taxonomy.ParameterPackageCase)

	tests := []struct {
		name string
		rec  *Record
	}{
		{"Nil", nil},
		{"NoParameters", &Record{PartNumber: "PN"}},
		{"OtherParametersOnly", &Record{PartNumber: "PN", Parameters: []Parameter{param(2085, 123, "Resistance")}}},
		{"PackageWithoutValueID", &Record{PartNumber: "PN", Parameters: []Parameter{{ParameterID: &noValueID, Value: &value}}}},
		{"ValueIDWithoutParameterID", &Record{PartNumber: "PN", Parameters: []Parameter{{ValueID: &noValueID}}}},
		{"MountingValidPackageWithoutValueID", &Record{PartNumber: "PN", Parameters: []Parameter{
			mountingParam(taxonomy.MountingSurfaceMount),
			bareParam(taxonomy.ParameterPackageCase),
		}}},
		{"PackageValidMountingWithoutValueID", &Record{PartNumber: "PN", Parameters: []Parameter{
			bareParam(taxonomy.ParameterMountingType),
			packageParam(taxonomy.Package0805),
		}}},
		{"LastPackageEntryWithoutValueID", &Record{PartNumber: "PN", Parameters: []Parameter{
			mountingParam(taxonomy.MountingSurfaceMount),
			packageParam(taxonomy.Package0805),
			bareParam(taxonomy.ParameterPackageCase),
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(tt.rec)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedRecord))

			var mre *MalformedRecordError
			assert.True(t, errors.As(err, &mre))
			assert.Equal(t, taxonomy.Unclassified, got)
		})
	}
}

func TestClassify_LastEntryWins(t *testing.T) {
	c := NewClassifier(taxonomy.Default())

	got, err := c.Classify(&Record{Parameters: []Parameter{
		packageParam(taxonomy.Package0805),
		mountingParam(taxonomy.MountingSurfaceMount),
		packageParam(taxonomy.Package1206),
	}})
	require.NoError(t, err)
	assert.Equal(t, taxonomy.Classification{Mount: taxonomy.MountSMT, Package: taxonomy.Package1206}, got)
}

func TestIsSMTPart(t *testing.T) {
	c := NewClassifier(taxonomy.Default())

	assert.True(t, c.IsSMTPart(&Record{Parameters: []Parameter{mountingParam(taxonomy.MountingSurfaceMount)}}))
	assert.False(t, c.IsSMTPart(&Record{Parameters: []Parameter{mountingParam(taxonomy.MountingSurfaceMountThroughHole)}}))
	assert.True(t, c.IsSMTPart(&Record{Parameters: []Parameter{param(taxonomy.ParameterSupplierDevicePackage, 412472, "SOT-23-5")}}))
	assert.True(t, c.IsSMTPart(&Record{Parameters: []Parameter{packageParam(taxonomy.Package1206)}}))
	assert.False(t, c.IsSMTPart(&Record{Parameters: []Parameter{packageParam(taxonomy.PackageTO92)}}))
	assert.False(t, c.IsSMTPart(nil))
}

func TestDecode(t *testing.T) {
	t.Run("StringAndNumberIDs", func(t *testing.T) {
		body := `{
			"DigiKeyPartNumber": "311-10.0KCRCT-ND",
			"Parameters": [
				{"ParameterId": 69, "Parameter": "Mounting Type", "Value": "Surface Mount", "ValueId": "409393"},
				{"ParameterId": "16", "Parameter": "Package / Case", "Value": "0805 (2012 Metric)", "ValueId": 39246},
				{"Parameter": "Part Status", "Value": "Active"}
			]
		}`
		rec, err := Decode(strings.NewReader(body), "ignored")
		require.NoError(t, err)
		assert.Equal(t, "311-10.0KCRCT-ND", rec.PartNumber)
		require.Len(t, rec.Parameters, 3)

		got, err := NewClassifier(taxonomy.Default()).Classify(rec)
		require.NoError(t, err)
		assert.Equal(t, taxonomy.Classification{Mount: taxonomy.MountSMT, Package: taxonomy.Package0805}, got)
	})

	t.Run("FillsPartNumber", func(t *testing.T) {
		rec, err := Decode(strings.NewReader(`{"Parameters": []}`), "PN-1")
		require.NoError(t, err)
		assert.Equal(t, "PN-1", rec.PartNumber)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`{"Parameters": [`), "PN-1")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedRecord))
		assert.Contains(t, err.Error(), "PN-1")
	})

	t.Run("MissingOrNullValueID", func(t *testing.T) {
		bodies := map[string]string{
			"PackageMissing":  `{"Parameters": [{"ParameterId": 69, "ValueId": "409393"}, {"ParameterId": 16, "Value": "0805"}]}`,
			"PackageNull":     `{"Parameters": [{"ParameterId": 69, "ValueId": "409393"}, {"ParameterId": 16, "ValueId": null}]}`,
			"MountingMissing": `{"Parameters": [{"ParameterId": 69, "Value": "Surface Mount"}, {"ParameterId": 16, "ValueId": 39246}]}`,
		}
		c := NewClassifier(taxonomy.Default())
		for name, body := range bodies {
			t.Run(name, func(t *testing.T) {
				got := taxonomy.Unclassified
				rec, err := Decode(strings.NewReader(body), "PN-1")
				if err == nil {
					got, err = c.Classify(rec)
				}
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedRecord))
				assert.Contains(t, err.Error(), "PN-1")
				assert.Equal(t, taxonomy.Unclassified, got)
			})
		}
	})

	t.Run("NonNumericValueID", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`{"Parameters": [{"ParameterId": 16, "ValueId": "abc"}]}`), "PN-1")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMalformedRecord))
	})
}

func TestMalformedRecordError_Message(t *testing.T) {
	err := &MalformedRecordError{Reason: "empty record"}
	assert.Equal(t, "malformed distributor record for unknown part: empty record", err.Error())
}
