package taxonomy

// Distributor parameter IDs.
const (
	ParameterPackageCase           = 16
	ParameterMountingType          = 69
	ParameterSupplierDevicePackage = 1291
)

// Mounting Type value IDs.
const (
	MountingSurfaceMount            = 409393
	MountingSurfaceMountMLCC        = 409394
	MountingSurfaceMountRightAngle  = 409395
	MountingThroughHole             = 411897
	MountingThroughHoleRightAngle   = 411898
	MountingSurfaceMountThroughHole = 413034
)

// Package / Case value IDs for the footprint families the rules know about.
const (
	Package0805    PackageType = 39246
	Package1206    PackageType = 40063
	Package2512    PackageType = 40146
	PackageTQFP44  PackageType = 39935
	PackageSC76    PackageType = 39816
	PackageSOIC8   PackageType = 39942
	PackageSOIC14  PackageType = 39913
	PackageSOIC16  PackageType = 39930
	PackageSOIC28  PackageType = 39979
	PackageSOT23   PackageType = 39832
	PackageSOT235  PackageType = 39946
	PackageSOT236  PackageType = 39957
	PackageDO214   PackageType = 39848
	PackageSOD123F PackageType = 40020
	PackageTO277   PackageType = 40086
	PackageMSOP10  PackageType = 39984

	PackageTO92   PackageType = 39799
	PackageTO220  PackageType = 39854
	PackageTO2203 PackageType = 39855
	PackageTO251  PackageType = 39904
	PackageHC49   PackageType = 40043
	PackageDIP8   PackageType = 39906
	PackageSIP3   PackageType = 39898
)

// DefaultTables returns the built-in tables. Each call returns a fresh copy.
func DefaultTables() Tables {
	return Tables{
		MountingTypes: []MountingType{
			{ID: MountingSurfaceMount, Name: "Surface Mount", SMT: true},
			{ID: MountingSurfaceMountMLCC, Name: "Surface Mount, MLCC", SMT: true},
			{ID: MountingSurfaceMountRightAngle, Name: "Surface Mount, Right Angle", SMT: true},
			{ID: MountingThroughHole, Name: "Through Hole", TH: true},
			{ID: MountingThroughHoleRightAngle, Name: "Through Hole, Right Angle", TH: true},
			{ID: MountingSurfaceMountThroughHole, Name: "Surface Mount, Through Hole", SMT: true, TH: true},
		},
		Packages: []Package{
			{ID: Package0805, Name: "0805 (2012 Metric)", Mount: MountSMT},
			{ID: Package1206, Name: "1206 (3216 Metric)", Mount: MountSMT},
			{ID: Package2512, Name: "2512 (6332 Metric)", Mount: MountSMT},
			{ID: PackageTQFP44, Name: "44-TQFP", Mount: MountSMT},
			{ID: PackageSC76, Name: "SC-76, SOD-323", Mount: MountSMT},
			{ID: PackageSOIC8, Name: `8-SOIC (0.154", 3.90mm Width)`, Mount: MountSMT},
			{ID: PackageSOIC14, Name: `14-SOIC (0.154", 3.90mm Width)`, Mount: MountSMT},
			{ID: PackageSOIC16, Name: `16-SOIC (0.154", 3.90mm Width)`, Mount: MountSMT},
			{ID: PackageSOIC28, Name: `28-SOIC (0.295", 7.50mm Width)`, Mount: MountSMT},
			{ID: PackageSOT23, Name: "TO-236-3, SC-59, SOT-23-3", Mount: MountSMT},
			{ID: PackageSOT235, Name: "SC-74A, SOT-753", Mount: MountSMT},
			{ID: PackageSOT236, Name: "SOT-23-6", Mount: MountSMT},
			{ID: PackageDO214, Name: "DO-214AC, SMA", Mount: MountSMT},
			{ID: PackageSOD123F, Name: "SOD-123F", Mount: MountSMT},
			{ID: PackageTO277, Name: "TO-277, 3-PowerDFN", Mount: MountSMT},
			{ID: PackageMSOP10, Name: `10-TFSOP, 10-MSOP (0.118", 3.00mm Width)`, Mount: MountSMT},
			{ID: PackageTO92, Name: "TO-226-3, TO-92-3 (TO-226AA)", Mount: MountThroughHole},
			{ID: PackageTO220, Name: "TO-220-2", Mount: MountThroughHole},
			{ID: PackageTO2203, Name: "TO-220-3", Mount: MountThroughHole},
			{ID: PackageTO251, Name: "TO-251-3 Short Leads, IPak, TO-251AA", Mount: MountThroughHole},
			{ID: PackageHC49, Name: "HC-49/US", Mount: MountThroughHole},
			{ID: PackageDIP8, Name: `8-DIP (0.300", 7.62mm)`, Mount: MountThroughHole},
			{ID: PackageSIP3, Name: "3-SIP", Mount: MountThroughHole},
		},
		SupplierPackages: []SupplierPackage{
			{ID: 412470, Name: "SOT-23-3", Mount: MountSMT},
			{ID: 412472, Name: "SOT-23-5", Mount: MountSMT},
			{ID: 412473, Name: "SOT-23-6", Mount: MountSMT},
			{ID: 412500, Name: "8-SO", Mount: MountSMT},
			{ID: 412510, Name: "SMA", Mount: MountSMT},
			{ID: 412530, Name: "SOD-323", Mount: MountSMT},
		},
		SMTKeywords: []string{
			"SMD", "SMT",
			"0402", "0603", "0805", "1206", "1210", "2512",
			"SOT", "SOIC", "SOD", "TQFP", "QFN", "MSOP", "DO-214", "TO_277",
		},
		// Longer patterns must precede the shorter patterns they contain,
		// otherwise the specific rule can never fire.
		Rules: []Rule{
			{Pattern: "0805", Package: Package0805},
			{Pattern: "1206", Package: Package1206},
			{Pattern: "2512", Package: Package2512},
			{Pattern: "TQFP-44", Package: PackageTQFP44},
			{Pattern: "SOD-323", Package: PackageSC76},
			{Pattern: "SOIC-14", Package: PackageSOIC14},
			{Pattern: "SOIC-16", Package: PackageSOIC16},
			{Pattern: "SOIC-8", Package: PackageSOIC8},
			{Pattern: "SOIC-28", Package: PackageSOIC28},
			{Pattern: "SOT-23-6", Package: PackageSOT236},
			{Pattern: "SOT-23-5", Package: PackageSOT235},
			{
				Pattern: "SOT-23",
				Package: PackageSOT23,
				Note:    "generic SOT-23 footprint is treated as the 3-pin package; verify the pin count if the part is a 5 or 6 pin variant",
			},
			{Pattern: "DO-214", Package: PackageDO214},
			{Pattern: "SOD-123F", Package: PackageSOD123F},
			{Pattern: "TO_277", Package: PackageTO277},
			{Pattern: "MSOP-10", Package: PackageMSOP10},
			{Pattern: "TO-92", Package: PackageTO92},
			{Pattern: "TO-220-3", Package: PackageTO2203},
			{Pattern: "TO-220", Package: PackageTO220},
			{Pattern: "TO-251", Package: PackageTO251},
			{Pattern: "HC49", Package: PackageHC49},
			{Pattern: "DIP-8", Package: PackageDIP8},
			{
				Pattern: "Vx78-1000",
				Package: PackageSIP3,
				Note:    "Vx78-1000 regulator footprint is mapped to the 3-pin SIP package",
			},
		},
	}
}
