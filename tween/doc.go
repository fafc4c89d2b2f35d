/*
Package tween interpolates properties of arbitrary objects over time.

A Registry owns the clips of one object type. Each Clip drives a single named
property of one object from start to finish over a fixed duration, passing
eased progress to an ApplyFunc that performs the actual mutation. A Scheduler
holds every registry and is stepped once per frame by the host:

	clock := tween.NewSystemClock()
	sched := tween.NewScheduler(clock)
	lights := tween.RegistryFor[*Light](sched)

	h := lights.Track(lamp)
	lights.Play(h, "fade", 1.5, ease.InOutQuad, func(l *Light, v float64) {
		l.Alpha = v
	}).SetEnd(func(l *Light) { log.Println("faded in") })

	for range ticker.C {
		sched.Step()
	}

Clips can be chained with PlayAfter; the successor starts on the frame after
its predecessor completes. Playing a clip under a name that is already active
on the same object cancels the old clip first.
*/
package tween
