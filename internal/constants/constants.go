// Package constants holds the platform lookup tables used to turn small
// integers back into the macro names they were compiled from.
package constants

const (
	// RKFuncGPIO is the Rockchip pin function index 0.
	RKFuncGPIO = "RK_FUNC_GPIO"

	GPIOActiveHigh = "GPIO_ACTIVE_HIGH"
	GPIOActiveLow  = "GPIO_ACTIVE_LOW"
)

// rockchipPins maps pin index 0-31 within a bank to its macro name.
var rockchipPins = [...]string{
	"RK_PA0", "RK_PA1", "RK_PA2", "RK_PA3", "RK_PA4", "RK_PA5", "RK_PA6", "RK_PA7",
	"RK_PB0", "RK_PB1", "RK_PB2", "RK_PB3", "RK_PB4", "RK_PB5", "RK_PB6", "RK_PB7",
	"RK_PC0", "RK_PC1", "RK_PC2", "RK_PC3", "RK_PC4", "RK_PC5", "RK_PC6", "RK_PC7",
	"RK_PD0", "RK_PD1", "RK_PD2", "RK_PD3", "RK_PD4", "RK_PD5", "RK_PD6", "RK_PD7",
}

// PinMacro returns the Rockchip pin macro for index v.
func PinMacro(v uint64) (string, bool) {
	if v >= uint64(len(rockchipPins)) {
		return "", false
	}

	return rockchipPins[v], true
}

// GPIOFlag returns the polarity macro for a GPIO flags cell.
func GPIOFlag(v uint64) (string, bool) {
	switch v {
	case 0:
		return GPIOActiveHigh, true
	case 1:
		return GPIOActiveLow, true
	default:
		return "", false
	}
}

// PinFunc returns the function macro for a Rockchip function index. Only
// the GPIO function has a generic name.
func PinFunc(v uint64) (string, bool) {
	if v == 0 {
		return RKFuncGPIO, true
	}

	return "", false
}
