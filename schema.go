package step

import (
	"sort"
)

// SchemaType identifies a recognized application protocol schema. The value
// is the protocol number.
type SchemaType int

const (
	ExplicitDraughting                SchemaType = 201
	AssociativeDraughting             SchemaType = 202
	ConfigControlDesign               SchemaType = 203
	StructuralAnalysisDesign          SchemaType = 209
	ElectronicAssemblyInterconnect    SchemaType = 210
	AutomotiveDesign                  SchemaType = 214
	ShipArrangement                   SchemaType = 215
	ShipMouldedForm                   SchemaType = 216
	ShipStructures                    SchemaType = 218
	DimensionalInspection             SchemaType = 219
	FunctionalDataAndSchematics       SchemaType = 221
	CastParts                         SchemaType = 223
	FeatureBasedProcessPlanning       SchemaType = 224
	BuildingDesign                    SchemaType = 225
	PlantSpatialConfiguration         SchemaType = 227
	TechnicalDataPackaging            SchemaType = 232
	EngineeringProperties             SchemaType = 235
	FurnitureCatalogAndInteriorDesign SchemaType = 236
	IntegratedCNC                     SchemaType = 238
	ProductLifeCycleSupport           SchemaType = 239
	ProcessPlanning                   SchemaType = 240
	ManagedModelBased3DEngineering    SchemaType = 242
)

var schemaNames = map[SchemaType]string{
	ExplicitDraughting:                "EXPLICIT_DRAUGHTING",
	AssociativeDraughting:             "ASSOCIATIVE_DRAUGHTING",
	ConfigControlDesign:               "CONFIG_CONTROL_DESIGN",
	StructuralAnalysisDesign:          "STRUCTURAL_ANALYSIS_DESIGN",
	ElectronicAssemblyInterconnect:    "AP210_ELECTRONIC_ASSEMBLY_INTERCONNECT_AND_PACKAGING_DESIGN_MIM_LF",
	AutomotiveDesign:                  "AUTOMOTIVE_DESIGN",
	ShipArrangement:                   "SHIP_ARRANGEMENT_SCHEMA",
	ShipMouldedForm:                   "SHIP_MOULDED_FORM_SCHEMA",
	ShipStructures:                    "SHIP_STRUCTURES_SCHEMA",
	DimensionalInspection:             "DIMENSIONAL_INSPECTION_SCHEMA",
	FunctionalDataAndSchematics:       "FUNCTIONAL_DATA_AND_SCHEMATIC_REPRESENTATION_MIM_LF",
	CastParts:                         "CAST_PARTS_SCHEMA",
	FeatureBasedProcessPlanning:       "FEATURE_BASED_PROCESS_PLANNING",
	BuildingDesign:                    "BUILDING_DESIGN_SCHEMA",
	PlantSpatialConfiguration:         "PLANT_SPATIAL_CONFIGURATION",
	TechnicalDataPackaging:            "TECHNICAL_DATA_PACKAGING",
	EngineeringProperties:             "ENGINEERING_PROPERTIES_SCHEMA",
	FurnitureCatalogAndInteriorDesign: "AP236_FURNITURE_CATALOG_AND_INTERIOR_DESIGN_MIM_LF",
	IntegratedCNC:                     "INTEGRATED_CNC_SCHEMA",
	ProductLifeCycleSupport:           "AP239_PRODUCT_LIFE_CYCLE_SUPPORT_MIM_LF",
	ProcessPlanning:                   "PROCESS_PLANNING_SCHEMA",
	ManagedModelBased3DEngineering:    "AP242_MANAGED_MODEL_BASED_3D_ENGINEERING_MIM_LF",
}

// aliases are additional names read as a recognized schema.
var schemaAliases = map[string]SchemaType{
	"AP203_CONFIGURATION_CONTROLLED_3D_DESIGN_OF_MECHANICAL_PARTS_AND_ASSEMBLIES_MIM_LF": ConfigControlDesign,
}

func (t SchemaType) String() string {
	return schemaNames[t]
}

// SchemaTypeFromName looks up a FILE_SCHEMA name.
func SchemaTypeFromName(name string) (SchemaType, bool) {
	if t, ok := schemaAliases[name]; ok {
		return t, true
	}
	for t, n := range schemaNames {
		if n == name {
			return t, true
		}
	}
	return 0, false
}

type SchemaSet map[SchemaType]struct{}

func NewSchemaSet(types ...SchemaType) SchemaSet {
	set := make(SchemaSet)
	for _, t := range types {
		set.Add(t)
	}
	return set
}

func (s SchemaSet) Add(t SchemaType) {
	s[t] = struct{}{}
}

func (s SchemaSet) Has(t SchemaType) bool {
	_, ok := s[t]
	return ok
}

// Sorted returns the members in protocol number order.
func (s SchemaSet) Sorted() []SchemaType {
	types := make([]SchemaType, 0, len(s))
	for t := range s {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

func (s SchemaSet) Names() []string {
	var names []string
	for _, t := range s.Sorted() {
		names = append(names, t.String())
	}
	return names
}
