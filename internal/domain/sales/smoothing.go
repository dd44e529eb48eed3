package sales

// DefaultSpan ventana por defecto de la media móvil (una semana).
const DefaultSpan = 7

// MovingAverage media móvil hacia atrás truncada por la izquierda: el elemento i es el
// promedio de values[max(0, i-span+1) .. i]. Los primeros span-1 valores promedian
// menos puntos (no se rellenan con ceros). Con span <= 1 o entrada vacía devuelve
// los valores sin cambios.
//
// Usa una suma deslizante: O(n) sin importar el span.
func MovingAverage(values []int, span int) []float64 {
	out := make([]float64, len(values))
	if span <= 1 || len(values) == 0 {
		for i, v := range values {
			out[i] = float64(v)
		}
		return out
	}

	sum := 0
	for i, v := range values {
		sum += v
		if i >= span {
			sum -= values[i-span]
		}
		out[i] = float64(sum) / float64(min(i+1, span))
	}
	return out
}
