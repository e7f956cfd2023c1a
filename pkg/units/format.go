package units

import "strconv"

// FormatAmount renders a converted value with magnitude-dependent
// precision: whole numbers at 100 and above, one decimal from 1 up,
// two decimals below 1.
func FormatAmount(v float64) string {
	switch {
	case v >= 100:
		return strconv.FormatFloat(v, 'f', 0, 64)
	case v >= 1:
		return strconv.FormatFloat(v, 'f', 1, 64)
	default:
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
}

// FormatMetric picks the display unit for a converted base value and
// renders it. Volume values are in milliliters and promote to liters at
// 1000; weight values are in grams and promote to kilograms at 1000;
// length values are in centimeters, promote to meters at 100 and demote
// to millimeters below 1.
func FormatMetric(domain Domain, base float64) string {
	switch domain {
	case DomainVolume:
		if base >= 1000 {
			return FormatAmount(base/1000) + " l"
		}
		return FormatAmount(base) + " ml"
	case DomainWeight:
		if base >= 1000 {
			return FormatAmount(base/1000) + " kg"
		}
		return FormatAmount(base) + " g"
	case DomainLength:
		if base >= 100 {
			return FormatAmount(base/100) + " m"
		}
		if base < 1 {
			return FormatAmount(base*10) + " mm"
		}
		return FormatAmount(base) + " cm"
	}
	return ""
}

// FormatLength renders an embedded length measurement in centimeters,
// or millimeters when under one centimeter.
func FormatLength(cm float64) string {
	if cm < 1 {
		return FormatAmount(cm*10) + " mm"
	}
	return FormatAmount(cm) + " cm"
}
