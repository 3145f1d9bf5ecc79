package model

// Msg is the websocket envelope. Type selects the calculator, Content
// carries the request or reply payload as a JSON string.
type Msg struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// 请求结构体 -------------------------------------------------------------

// CapillaryReq is the raw capillary-rise request as the UI sends it.
// Tube diameter arrives in mm, the contact angle in degrees.
type CapillaryReq struct {
	Fluid           string  `json:"fluid"`
	SurfaceTension  float64 `json:"surface_tension"` // custom fluid only, N/m
	Density         float64 `json:"density"`         // custom fluid only, kg/m³
	ContactAngleDeg float64 `json:"contact_angle_deg"`
	TubeDiameterMM  float64 `json:"tube_diameter_mm"`
}

// ManometerReq is the raw open-manometer request. Column heights arrive
// in cm measured from the datum.
type ManometerReq struct {
	FluidDensity     float64 `json:"fluid_density"`
	ManometerDensity float64 `json:"manometer_density"`
	ColumnHeightCM   float64 `json:"column_height_cm"`
	DatumOffsetCM    float64 `json:"datum_offset_cm"`
}

// WallReq is the raw hydrostatic-wall request. InclineDeg is the angle
// between the wall and the horizontal; 90 is a vertical wall.
type WallReq struct {
	Density    float64 `json:"density"`
	Width      float64 `json:"width"`
	Depth      float64 `json:"depth"`
	InclineDeg float64 `json:"incline_deg"`
}

// PipeBendReq is the raw pipe-bend request. Diameters arrive in cm, flow
// rate and inlet pressure carry their unit tags.
type PipeBendReq struct {
	InletDiameterCM  float64 `json:"inlet_diameter_cm"`
	OutletDiameterCM float64 `json:"outlet_diameter_cm"`
	BendAngleDeg     float64 `json:"bend_angle_deg"`
	FlowRate         float64 `json:"flow_rate"`
	FlowUnit         string  `json:"flow_unit"` // "L/s", "m3/h", "kg/s"
	InletPressure    float64 `json:"inlet_pressure"`
	PressureUnit     string  `json:"pressure_unit"` // "kPa", "atm"
	Density          float64 `json:"density"`
}

// 参数结构体，全部为SI单位 -----------------------------------------------

// CapillaryParams is a resolved capillary-rise parameter record. All
// fields are SI; the contact angle stays in degrees until the evaluator
// converts it for trigonometric use.
type CapillaryParams struct {
	SurfaceTension  float64 `json:"surface_tension"` // N/m
	Density         float64 `json:"density"`         // kg/m³
	ContactAngleDeg float64 `json:"contact_angle_deg"`
	TubeDiameter    float64 `json:"tube_diameter"` // m
	Gravity         float64 `json:"gravity"`       // m/s²
}

// ManometerParams is a resolved open-manometer parameter record.
type ManometerParams struct {
	FluidDensity     float64 `json:"fluid_density"`     // kg/m³
	ManometerDensity float64 `json:"manometer_density"` // kg/m³
	ColumnHeight     float64 `json:"column_height"`     // m, manometer leg
	DatumOffset      float64 `json:"datum_offset"`      // m, pipe centre above datum
	Gravity          float64 `json:"gravity"`
}

// WallParams is a resolved wall parameter record.
type WallParams struct {
	Density    float64 `json:"density"` // kg/m³
	Width      float64 `json:"width"`   // m, into the page
	Depth      float64 `json:"depth"`   // m, wetted vertical depth
	InclineDeg float64 `json:"incline_deg"`
	Gravity    float64 `json:"gravity"`
}

// PipeBendParams is a resolved pipe-bend parameter record. Flow rate is
// volumetric (m³/s) and pressures are gauge (Pa) after boundary
// normalization; the evaluator never sees unit tags.
type PipeBendParams struct {
	InletDiameter  float64 `json:"inlet_diameter"`  // m
	OutletDiameter float64 `json:"outlet_diameter"` // m
	BendAngleDeg   float64 `json:"bend_angle_deg"`
	FlowRate       float64 `json:"flow_rate"`       // m³/s
	InletPressure  float64 `json:"inlet_pressure"` // Pa gauge
	Density        float64 `json:"density"`        // kg/m³
}

// 计算结果结构体 ---------------------------------------------------------

type CapillaryResult struct {
	RiseHeight float64 `json:"rise_height"` // m, negative for non-wetting
}

type ManometerResult struct {
	PressureDiff float64 `json:"pressure_diff"` // Pa gauge
}

type WallResult struct {
	Force            float64 `json:"force"`              // N
	CenterOfPressure float64 `json:"center_of_pressure"` // m below surface
}

type PipeBendResult struct {
	AreaIn         float64 `json:"area_in"`  // m²
	AreaOut        float64 `json:"area_out"` // m²
	VelocityIn     float64 `json:"velocity_in"`
	VelocityOut    float64 `json:"velocity_out"`
	OutletPressure float64 `json:"outlet_pressure"` // Pa gauge
	ForceX         float64 `json:"force_x"`         // N, fluid on pipe
	ForceY         float64 `json:"force_y"`
	Resultant      float64 `json:"resultant"`
	DirectionDeg   float64 `json:"direction_deg"`
}
