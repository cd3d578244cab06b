package models

import "time"

type MotorcycleStatus string

const (
	MotorcycleStatusDraft     MotorcycleStatus = "draft"
	MotorcycleStatusPublished MotorcycleStatus = "published"
)

type EngineSpecs struct {
	Type             string  `json:"type,omitempty" firestore:"type"`
	Displacement     float64 `json:"displacement,omitempty" firestore:"displacement"`
	BoreStroke       string  `json:"bore_stroke,omitempty" firestore:"bore_stroke"`
	CompressionRatio string  `json:"compression_ratio,omitempty" firestore:"compression_ratio"`
	ValvesPerCyl     int     `json:"valves_per_cylinder,omitempty" firestore:"valves_per_cylinder"`
	Cooling          string  `json:"cooling,omitempty" firestore:"cooling"`
	FuelSystem       string  `json:"fuel_system,omitempty" firestore:"fuel_system"`
	Ignition         string  `json:"ignition,omitempty" firestore:"ignition"`
	Starter          string  `json:"starter,omitempty" firestore:"starter"`
}

type PerformanceSpecs struct {
	MaxPower    string  `json:"max_power,omitempty" firestore:"max_power"`
	MaxTorque   string  `json:"max_torque,omitempty" firestore:"max_torque"`
	TopSpeed    float64 `json:"top_speed,omitempty" firestore:"top_speed"`
	Mileage     float64 `json:"mileage,omitempty" firestore:"mileage"`
	Acceleration string `json:"acceleration,omitempty" firestore:"acceleration"`
}

type TransmissionSpecs struct {
	Gearbox    string `json:"gearbox,omitempty" firestore:"gearbox"`
	Clutch     string `json:"clutch,omitempty" firestore:"clutch"`
	FinalDrive string `json:"final_drive,omitempty" firestore:"final_drive"`
}

type ElectronicsSpecs struct {
	RidingModes     []string `json:"riding_modes,omitempty" firestore:"riding_modes"`
	TractionControl bool     `json:"traction_control,omitempty" firestore:"traction_control"`
	Quickshifter    bool     `json:"quickshifter,omitempty" firestore:"quickshifter"`
	CruiseControl   bool     `json:"cruise_control,omitempty" firestore:"cruise_control"`
	Display         string   `json:"display,omitempty" firestore:"display"`
	Connectivity    string   `json:"connectivity,omitempty" firestore:"connectivity"`
}

type ChassisSpecs struct {
	FrameType       string `json:"frame_type,omitempty" firestore:"frame_type"`
	FrontSuspension string `json:"front_suspension,omitempty" firestore:"front_suspension"`
	RearSuspension  string `json:"rear_suspension,omitempty" firestore:"rear_suspension"`
	FrontTyre       string `json:"front_tyre,omitempty" firestore:"front_tyre"`
	RearTyre        string `json:"rear_tyre,omitempty" firestore:"rear_tyre"`
	WheelType       string `json:"wheel_type,omitempty" firestore:"wheel_type"`
}

type BrakeSpecs struct {
	FrontBrake string `json:"front_brake,omitempty" firestore:"front_brake"`
	RearBrake  string `json:"rear_brake,omitempty" firestore:"rear_brake"`
	ABS        string `json:"abs,omitempty" firestore:"abs"`
}

type DimensionSpecs struct {
	Length         float64 `json:"length,omitempty" firestore:"length"`
	Width          float64 `json:"width,omitempty" firestore:"width"`
	Height         float64 `json:"height,omitempty" firestore:"height"`
	Wheelbase      float64 `json:"wheelbase,omitempty" firestore:"wheelbase"`
	GroundClearance float64 `json:"ground_clearance,omitempty" firestore:"ground_clearance"`
	SeatHeight     float64 `json:"seat_height,omitempty" firestore:"seat_height"`
	KerbWeight     float64 `json:"kerb_weight,omitempty" firestore:"kerb_weight"`
	FuelCapacity   float64 `json:"fuel_capacity,omitempty" firestore:"fuel_capacity"`
}

type PricingSpecs struct {
	ExShowroomPrice float64 `json:"ex_showroom_price,omitempty" firestore:"ex_showroom_price"`
	OnRoadPrice     float64 `json:"on_road_price,omitempty" firestore:"on_road_price"`
	Currency        string  `json:"currency,omitempty" firestore:"currency"`
	EMIAvailable    bool    `json:"emi_available,omitempty" firestore:"emi_available"`
}

type ColorOption struct {
	Name     string `json:"name" firestore:"name"`
	HexCode  string `json:"hex_code,omitempty" firestore:"hex_code"`
	ImageURL string `json:"image_url,omitempty" firestore:"image_url"`
}

type MotorcycleImages struct {
	Cover   string   `json:"cover,omitempty" firestore:"cover"`
	Gallery []string `json:"gallery,omitempty" firestore:"gallery"`
}

type Motorcycle struct {
	ID        string           `json:"id" firestore:"id"`
	Brand     string           `json:"brand" firestore:"brand" validate:"required"`
	ModelName string           `json:"model_name" firestore:"model_name" validate:"required"`
	Variant   string           `json:"variant,omitempty" firestore:"variant"`
	ModelYear int              `json:"model_year" firestore:"model_year" validate:"required,model_year"`
	Category  string           `json:"category" firestore:"category"`
	Status    MotorcycleStatus `json:"status" firestore:"status"`

	Engine       EngineSpecs       `json:"engine" firestore:"engine"`
	Performance  PerformanceSpecs  `json:"performance" firestore:"performance"`
	Transmission TransmissionSpecs `json:"transmission" firestore:"transmission"`
	Electronics  ElectronicsSpecs  `json:"electronics" firestore:"electronics"`
	Chassis      ChassisSpecs      `json:"chassis" firestore:"chassis"`
	Brakes       BrakeSpecs        `json:"brakes" firestore:"brakes"`
	Dimensions   DimensionSpecs    `json:"dimensions" firestore:"dimensions"`
	Pricing      PricingSpecs      `json:"pricing" firestore:"pricing"`

	Colors   []ColorOption    `json:"colors,omitempty" firestore:"colors"`
	Images   MotorcycleImages `json:"images" firestore:"images"`
	Features []string         `json:"features,omitempty" firestore:"features"`

	Summary         string `json:"summary,omitempty" firestore:"summary"`
	MetaTitle       string `json:"meta_title,omitempty" firestore:"meta_title"`
	MetaDescription string `json:"meta_description,omitempty" firestore:"meta_description"`

	// Recomputed by the service on every save; never accepted from clients.
	DataCompletionPercentage float64 `json:"data_completion_percentage" firestore:"data_completion_percentage"`

	CreatedBy string    `json:"created_by,omitempty" firestore:"created_by"`
	CreatedAt time.Time `json:"created_at" firestore:"created_at"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updated_at"`
}
