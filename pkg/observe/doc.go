/*
Package observe instruments behavior trees without touching their semantics.

Wrap decorates any node so hooks fire around each tick; the child's Result is
always forwarded untouched. Hooks adapt to structured logging (SlogHooks) and
Prometheus metrics (Metrics), and compose with Join. The core composites stay
pure: everything an external caller observes from ticking remains exactly one
Result per call.
*/
package observe
